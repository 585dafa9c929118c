// Package c2p holds the pieces shared by every layer of the toolkit:
// the Logger interface that parsers and transforms report through, and
// the Rule/Transform machinery that turns a config tree into a param
// tree.
//
// The rest lives in the subpackages: vtree (the value tree), json and
// ini (codecs over the tree), text (the cursor both codecs share), cli
// (argument parsing into a tree), patch (JSON merge/RFC 6902 patching)
// and yamlconv (YAML ingestion).
package c2p
