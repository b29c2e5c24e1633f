package uroman

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Lattices are short-lived objects: one per input line. To avoid
// re-allocating the edge tables for every line we pool them.
type latticePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalLatticePool *latticePool

func init() {
	globalLatticePool = &latticePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			lat := &Lattice{}
			return lat, nil
		})
	globalLatticePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalLatticePool.opool = pool.NewObjectPool(globalLatticePool.ctx, factory, config)
}

// NewLattice returns a lattice initialized for one line of input,
// taken from the pool. The hint must already be normalized. Callers
// release the lattice with ReleaseLattice once the line's result has
// been materialized.
func NewLattice(input []rune, hint string) *Lattice {
	o, _ := globalLatticePool.opool.BorrowObject(globalLatticePool.ctx)
	lat := o.(*Lattice)
	lat.Init(input, hint)
	return lat
}

// ReleaseLattice clears a lattice and puts it back into the pool.
// The lattice must not be used afterwards.
func ReleaseLattice(lat *Lattice) {
	lat.input = nil
	lat.hint = ""
	_ = globalLatticePool.opool.ReturnObject(globalLatticePool.ctx, lat)
}
