package uts10

import (
	"context"
	"sync"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/textlocale/locale"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// A workspace carries the mutable state needed for a single collation
// operation. Collators of golang.org/x/text/collate are not safe for
// concurrent use, neither are key buffers.
type workspace struct {
	coll    *collate.Collator
	matcher *search.Matcher
	buf     collate.Buffer
}

func newWorkspace(tag language.Tag, opts Options) *workspace {
	var copts []collate.Option
	var sopts []search.Option
	if opts.IgnoreCase {
		copts = append(copts, collate.IgnoreCase)
		sopts = append(sopts, search.IgnoreCase)
	}
	if opts.Numeric {
		copts = append(copts, collate.Numeric)
	}
	return &workspace{
		coll:    collate.New(tag, copts...),
		matcher: search.New(tag, sopts...),
	}
}

// Workspaces are short-lived, but expensive to create. To avoid multiple
// allocations of collation tables we will pool them, one pool per locale and
// option set.
type workspacePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

type poolKey struct {
	locale     string
	ignoreCase bool
	numeric    bool
}

var workspacePools = struct {
	sync.Mutex
	pools map[poolKey]*workspacePool
}{pools: make(map[poolKey]*workspacePool)}

// poolFor returns the workspace pool for a rule set and option set, creating
// it on first use.
func poolFor(rules *locale.RuleSet, opts Options) *workspacePool {
	key := poolKey{locale: rules.ID(), ignoreCase: opts.IgnoreCase, numeric: opts.Numeric}
	workspacePools.Lock()
	defer workspacePools.Unlock()
	if wp, ok := workspacePools.pools[key]; ok {
		return wp
	}
	wp := newWorkspacePool(rules.Tag(), opts)
	workspacePools.pools[key] = wp
	CT().Debugf("created collation workspace pool for %+v", key)
	return wp
}

func newWorkspacePool(tag language.Tag, opts Options) *workspacePool {
	wp := &workspacePool{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newWorkspace(tag, opts), nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	wp.opool = pool.NewObjectPool(wp.ctx, factory, config)
	return wp
}

func (wp *workspacePool) borrow() (*workspace, error) {
	o, err := wp.opool.BorrowObject(wp.ctx)
	if err != nil {
		CT().Errorf("cannot borrow collation workspace: %v", err)
		return nil, err
	}
	return o.(*workspace), nil
}

// Clears the workspace and puts it back into the pool.
func (wp *workspacePool) release(ws *workspace) {
	ws.buf.Reset()
	_ = wp.opool.ReturnObject(wp.ctx, ws)
}
