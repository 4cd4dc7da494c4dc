package fortune

import (
	"context"
	"errors"
	"time"

	"pawstars-api/internal/platform/logger"
	"pawstars-api/internal/platform/phrases"
	"pawstars-api/internal/ports/completion"
)

var (
	ErrInvalidInput = errors.New("name and breed are required")
)

const DefaultTimeout = 10 * time.Second

type Options struct {
	// Completer nil => siempre fallback (sin credencial configurada).
	Completer completion.Completer
	Picker    *phrases.Picker
	Timeout   time.Duration
	Logger    logger.Logger
}

type Service struct {
	completer completion.Completer
	picker    *phrases.Picker
	timeout   time.Duration
	log       logger.Logger
}

func NewService(opts Options) *Service {
	s := &Service{
		completer: opts.Completer,
		picker:    opts.Picker,
		timeout:   opts.Timeout,
		log:       opts.Logger,
	}
	if s.picker == nil {
		s.picker = phrases.NewPicker()
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	s.log = s.log.With(map[string]any{"module": "fortune"})
	return s
}

// Tell: validar -> prompt -> un intento de completion -> fallback.
// Solo devuelve error por input inválido; fallos del proveedor se absorben.
func (s *Service) Tell(ctx context.Context, in Input) (Result, error) {
	if !in.Dog.Valid() {
		return Result{}, ErrInvalidInput
	}

	text, err := completion.Generate(ctx, s.completer, s.timeout, completionRequest(in))
	if err == nil {
		return Result{Text: text, Source: SourceCompletion}, nil
	}

	fields := map[string]any{
		"reason":   completion.Reason(err),
		"provider": completion.ProviderName(s.completer),
	}
	if errors.Is(err, completion.ErrNotConfigured) {
		s.log.Debug("completion skipped, using fallback", fields)
	} else {
		fields["error"] = err
		s.log.Warn("completion failed, using fallback", fields)
	}

	return Result{Text: Fallback(s.picker, in), Source: SourceFallback}, nil
}
