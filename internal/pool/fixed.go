package pool

type fixed struct {
	available chan interface{}
	all       chan interface{}
	buf       chan interface{}
	newFn     func() interface{}
}

// NewFixed returns a token pool capped at capacity. Once capacity tokens are
// checked out, further Get calls block until a token is returned via Put,
// giving the map engine's WithMaxConcurrency its admission control.
func NewFixed(capacity uint, newFn func() interface{}) Pool {
	return &fixed{
		available: make(chan interface{}, capacity),
		all:       make(chan interface{}, capacity),
		buf:       make(chan interface{}, 1024),
		newFn:     newFn,
	}
}

func (p *fixed) Get() interface{} {
	select {
	case el := <-p.available:
		return el

	case el := <-p.buf:
		return el

	default:
		var el interface{}

		// all holds one entry per minted token: mint while it has room,
		// otherwise wait for a token to come back through Put.
		select {
		case p.all <- struct{}{}:
			el = p.newFn()
		case el = <-p.available:
		}

		return el
	}
}

func (p *fixed) Put(el interface{}) {
	select {
	case p.available <- el:
	default:
	}
}
