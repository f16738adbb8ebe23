package bintree

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTreeInsert(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := NewTree(1)
	defer tree.Close()
	for i, expect := range []string{"L", "R", "LL"} {
		path, err := tree.Insert(i + 2)
		if err != nil {
			t.Fatal(err)
		}
		if path.String() != expect {
			t.Errorf("insert %d: expected path %s, got %s", i+2, expect, path)
		}
	}
	if tree.Len() != 4 {
		t.Errorf("expected 4 nodes, have %d", tree.Len())
	}
	if s := shape(tree.Root()); s != "1(2(4,-),3)" {
		t.Errorf("unexpected shape %s", s)
	}
}

func TestTreeFromCountsNodes(t *testing.T) {
	tree := TreeFrom(Build("a", "b", "c"))
	defer tree.Close()
	if tree.Len() != 3 {
		t.Errorf("expected 3 nodes, have %d", tree.Len())
	}
}

func TestTreeRejectsOverlappingInsert(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := NewTree(0)
	defer tree.Close()
	tree.busy.Store(true) // pretend another insertion is in progress
	if _, err := tree.Insert(1); !errors.Is(err, ErrConcurrentInsert) {
		t.Fatalf("expected ErrConcurrentInsert, got %v", err)
	}
	if tree.Len() != 1 || !tree.Root().IsLeaf() {
		t.Errorf("rejected insert modified the tree")
	}
	tree.busy.Store(false)
	if _, err := tree.Insert(1); err != nil {
		t.Errorf("expected insert to succeed, got %v", err)
	}
}

func TestTreeConcurrentInsertersKeepTreeComplete(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	const workers, perWorker = 8, 50
	tree := NewTree(-1)
	defer tree.Close()
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				for {
					_, err := tree.Insert(w*perWorker + i)
					if err == nil {
						break
					}
					if !errors.Is(err, ErrConcurrentInsert) {
						t.Errorf("unexpected error %v", err)
						return
					}
					runtime.Gosched()
				}
			}
		}()
	}
	wg.Wait()
	if tree.Len() != workers*perWorker+1 {
		t.Errorf("expected %d nodes, have %d", workers*perWorker+1, tree.Len())
	}
	if err := tree.Root().CheckComplete(); err != nil {
		t.Errorf("tree not complete after concurrent inserts: %v", err)
	}
}

func TestTreeClosed(t *testing.T) {
	tree := NewTree("r")
	tree.Close()
	tree.Close() // idempotent
	if _, err := tree.Insert("x"); !errors.Is(err, ErrTreeClosed) {
		t.Errorf("expected ErrTreeClosed, got %v", err)
	}
	if _, err := tree.Subscribe(context.Background(), 1); !errors.Is(err, ErrTreeClosed) {
		t.Errorf("expected ErrTreeClosed for subscription, got %v", err)
	}
}

func TestTreeSubscribe(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := NewTree("r")
	defer tree.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := tree.Subscribe(ctx, 8)
	if err != nil {
		t.Fatal(err)
	}
	keys := []string{"a", "b", "c", "d"}
	for _, k := range keys {
		if _, err := tree.Insert(k); err != nil {
			t.Fatal(err)
		}
	}
	for i, k := range keys {
		select {
		case ev := <-events:
			if ev.Key != k {
				t.Errorf("event %d: expected key %s, got %s", i, k, ev.Key)
			}
			if ev.Index != i+1 || ev.Size != i+2 {
				t.Errorf("event %d: unexpected index/size %d/%d", i, ev.Index, ev.Size)
			}
			if node, ok := tree.Root().At(ev.Path); !ok || node.Key() != k {
				t.Errorf("event %d: path %q does not address %s", i, ev.Path, k)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for event %d", i)
		}
	}
}
