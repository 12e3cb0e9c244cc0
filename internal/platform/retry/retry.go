package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Policy describe cuántas veces reintentar y con qué espera.
// Attempts cuenta la ejecución inicial (Attempts=4 => 1 intento + 3 reintentos).
type Policy struct {
	Attempts uint

	// newDelay crea un BackOff nuevo por llamada (los BackOff tienen estado).
	newDelay func() backoff.BackOff

	// Retryable decide si un error merece otro intento. nil => todos.
	Retryable func(error) bool

	// OnRetry se llama antes de cada espera (logging).
	OnRetry func(attempt uint, err error, wait time.Duration)
}

// Exponential: base, base*mult, base*mult^2, ... sin jitter.
func Exponential(base time.Duration, multiplier float64, retries uint) Policy {
	return Policy{
		Attempts: retries + 1,
		newDelay: func() backoff.BackOff {
			return &backoff.ExponentialBackOff{
				InitialInterval:     base,
				RandomizationFactor: 0,
				Multiplier:          multiplier,
				MaxInterval:         time.Hour,
			}
		},
	}
}

// Linear: base*1, base*2, base*3, ... (attempts totales).
func Linear(base time.Duration, attempts uint) Policy {
	return Policy{
		Attempts: attempts,
		newDelay: func() backoff.BackOff { return &linearBackOff{base: base} },
	}
}

// WithRetryable devuelve una copia con el filtro de errores.
func (p Policy) WithRetryable(fn func(error) bool) Policy {
	p.Retryable = fn
	return p
}

// WithOnRetry devuelve una copia con el hook de notificación.
func (p Policy) WithOnRetry(fn func(attempt uint, err error, wait time.Duration)) Policy {
	p.OnRetry = fn
	return p
}

// Do ejecuta op con la política. Errores no reintentables se devuelven tal cual.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	attempts := p.Attempts
	if attempts == 0 {
		attempts = 1
	}
	var delay backoff.BackOff = &backoff.ZeroBackOff{}
	if p.newDelay != nil {
		delay = p.newDelay()
	}

	var attempt uint
	opts := []backoff.RetryOption{
		backoff.WithBackOff(delay),
		backoff.WithMaxTries(attempts),
		backoff.WithMaxElapsedTime(0),
	}
	if p.OnRetry != nil {
		opts = append(opts, backoff.WithNotify(func(err error, wait time.Duration) {
			p.OnRetry(attempt, err, wait)
		}))
	}

	return backoff.Retry(ctx, func() (T, error) {
		attempt++
		v, err := op(ctx)
		if err != nil && p.Retryable != nil && !p.Retryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, opts...)
}

// linearBackOff crece base*(n) por intento.
type linearBackOff struct {
	base time.Duration
	n    int64
}

func (b *linearBackOff) Reset() { b.n = 0 }

func (b *linearBackOff) NextBackOff() time.Duration {
	b.n++
	return b.base * time.Duration(b.n)
}
