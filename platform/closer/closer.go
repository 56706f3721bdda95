package closer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(ctx context.Context) error
}

type closer struct {
	mu     sync.Mutex
	funcs  []namedFunc
	logger Logger
	closed bool
}

var global = &closer{}

func SetLogger(l Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logger = l
}

func Add(fn func(ctx context.Context) error) {
	AddNamed("", fn)
}

func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.funcs = append(global.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll runs the registered close functions in reverse registration
// order, so dependents shut down before their dependencies.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	if global.closed {
		global.mu.Unlock()
		return nil
	}
	global.closed = true
	funcs := global.funcs
	global.funcs = nil
	log := global.logger
	global.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		nf := funcs[i]
		if err := nf.fn(ctx); err != nil {
			if log != nil {
				log.Error(ctx, "close failed",
					zap.String("name", nf.name),
					zap.Error(err),
				)
			}
			errs = append(errs, err)
			continue
		}
		if log != nil && nf.name != "" {
			log.Info(ctx, "closed", zap.String("name", nf.name))
		}
	}

	return errors.Join(errs...)
}
