// Package patch applies RFC 7386 merge patches and RFC 6902 operation
// lists to value trees, bridging through the JSON codec.
package patch

import (
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/debug"
	"github.com/c2p-dev/go-c2p/json"
	"github.com/c2p-dev/go-c2p/vtree"
)

var ErrEmptyTree = errors.New("cannot patch with an empty tree")

// Merge applies the RFC 7386 merge patch p to doc and returns the merged
// tree. Neither input is modified.
func Merge(doc, p *vtree.Tree) (*vtree.Tree, error) {
	docJSON, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	patchJSON, err := marshal(p)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch %s onto %s\n", patchJSON, docJSON)
	}
	merged, err := jsonpatch.MergePatch(docJSON, patchJSON)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return unmarshal(merged)
}

// ApplyOps applies an RFC 6902 operation list (an Array tree of op
// objects) to doc and returns the patched tree. Neither input is modified.
func ApplyOps(doc, ops *vtree.Tree) (*vtree.Tree, error) {
	if ops == nil || !ops.IsArray() {
		return nil, errors.New("patch operations must be an array")
	}
	docJSON, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	opsJSON, err := marshal(ops)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("apply ops %s onto %s\n", opsJSON, docJSON)
	}
	decoded, err := jsonpatch.DecodePatch(opsJSON)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	out, err := decoded.Apply(docJSON)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return unmarshal(out)
}

func marshal(t *vtree.Tree) ([]byte, error) {
	if t == nil || t.IsEmpty() {
		return nil, ErrEmptyTree
	}
	return []byte(json.Dump(t, false, 0)), nil
}

func unmarshal(data []byte) (*vtree.Tree, error) {
	var errs []string
	lg := c2p.CallbackLogger{OnError: func(m string) { errs = append(errs, m) }}
	tree := json.Parse(string(data), lg)
	if len(errs) > 0 {
		return nil, fmt.Errorf("reread patched document: %s", strings.Join(errs, "; "))
	}
	return tree, nil
}
