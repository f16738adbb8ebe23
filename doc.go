/*
Package bintree builds binary trees of arbitrary keys.

Nodes

A Node carries a key of any type and owns up to two child subtrees. Nodes are
created as leafs by

	bintree.New(key)

and may be hand-assembled with fluent attachment:

	root := bintree.New("a").
	    WithLeft(bintree.New("b")).
	    WithRight(bintree.New("c"))

Attaching to an occupied slot replaces the former occupant together with its
subtree.

Level-order insertion

Node.Insert grows a tree at the first empty child slot found in breadth-first,
left-to-right order. Starting from a single node, a sequence of insertions
always yields a complete binary tree: every level is full except possibly the
last one, which is filled from the left without gaps. This is the fill order
of the classic array-backed heap layout, without the array.

Keys are never compared. The shape of a tree is a function of the number of
insertions only, which is why this is not a search tree: there is no lookup by
key, no deletion and no rebalancing.

Concurrency

Nodes are not synchronized. Exactly one mutator may operate on a tree at a
time. Clients which need to share a tree between goroutines may use Tree,
which detects overlapping insertions and reports them as ErrConcurrentInsert.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

var (
	// ErrNotATree signals that a node is reachable on more than one path,
	// i.e. a subtree is shared or the structure contains a cycle.
	ErrNotATree = errors.New("bintree: structure is not a tree")
	// ErrIncomplete signals a tree which is not a complete binary tree.
	ErrIncomplete = errors.New("bintree: tree is not complete")
	// ErrConcurrentInsert is flagged by Tree whenever an insertion overlaps
	// with another insertion in progress.
	ErrConcurrentInsert = errors.New("bintree: concurrent insert")
	// ErrTreeClosed is flagged for operations on a closed Tree.
	ErrTreeClosed = errors.New("bintree: tree has been closed")
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("bintree: illegal arguments")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
