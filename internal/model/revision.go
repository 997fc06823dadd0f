// Package model defines the data structures for revision file repair.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Path represents a file system path.
type Path string

// Revision identifies one revision file inside an FSFS repository.
type Revision struct {
	Repo   Path
	Number string
}

func (r Revision) String() string {
	return fmt.Sprintf("%s@r%s", r.Repo, r.Number)
}

// NodeRevisionID is the textual node-revision identifier embedded in revision
// files, in the form <node>.<copy>.r<rev>/<offset>.
type NodeRevisionID struct {
	NodeID string
	CopyID string
	Rev    string
	Offset string
}

// ParseNodeRevisionID splits a revision-type node-revision ID into its parts.
// Transaction IDs (<node>.<copy>.t<txn>) are rejected since they never appear
// in a committed revision file.
func ParseNodeRevisionID(text string) (NodeRevisionID, error) {
	parts := strings.SplitN(text, ".", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return NodeRevisionID{}, fmt.Errorf("malformed node-revision id %q", text)
	}

	rest := parts[2]
	if !strings.HasPrefix(rest, "r") {
		return NodeRevisionID{}, fmt.Errorf("node-revision id %q is not a revision id", text)
	}

	rev, offset, ok := strings.Cut(rest[1:], "/")
	if !ok || !isDigits(rev) || !isDigits(offset) {
		return NodeRevisionID{}, fmt.Errorf("malformed revision part in node-revision id %q", text)
	}

	return NodeRevisionID{
		NodeID: parts[0],
		CopyID: parts[1],
		Rev:    rev,
		Offset: offset,
	}, nil
}

func (id NodeRevisionID) String() string {
	return id.NodeID + "." + id.CopyID + ".r" + id.Rev + "/" + id.Offset
}

// WithOffset returns a copy of id pointing at offset.
func (id NodeRevisionID) WithOffset(offset int64) NodeRevisionID {
	id.Offset = strconv.FormatInt(offset, 10)
	return id
}

// SameNode reports whether both IDs name the same node and copy in the same revision.
func (id NodeRevisionID) SameNode(other NodeRevisionID) bool {
	return id.NodeID == other.NodeID && id.CopyID == other.CopyID && id.Rev == other.Rev
}

// DeltaRef is a "DELTA <rev> <offset> <size>" representation header line.
type DeltaRef struct {
	Rev    string
	Offset string
	Size   string
}

func (d DeltaRef) String() string {
	return strings.Join([]string{"DELTA", d.Rev, d.Offset, d.Size}, " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
