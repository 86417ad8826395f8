package mbase

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalEncodeStart     = capitan.NewSignal("codec.encode.start", "Encode operation beginning")
	SignalEncodeComplete  = capitan.NewSignal("codec.encode.complete", "Encode operation finished")
	SignalDecodeStart     = capitan.NewSignal("codec.decode.start", "Decode operation beginning")
	SignalDecodeComplete  = capitan.NewSignal("codec.decode.complete", "Decode operation finished")
	SignalDetectStart     = capitan.NewSignal("codec.detect.start", "Detection beginning")
	SignalDetectComplete  = capitan.NewSignal("codec.detect.complete", "Detection finished")
	SignalExplainComplete = capitan.NewSignal("codec.explain.complete", "Explain operation finished")
	SignalRegistryBuilt   = capitan.NewSignal("codec.registry.built", "Codec registry constructed")
)

// Keys for typed event data.
var (
	KeyCodec      = capitan.NewStringKey("codec")
	KeyMode       = capitan.NewStringKey("mode")
	KeySize       = capitan.NewIntKey("size")
	KeyCandidates = capitan.NewIntKey("candidates")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// EmitRegistryBuilt emits an event when a registry is constructed.
// Exported for the catalog package, which owns the process-wide registry.
func EmitRegistryBuilt(ctx context.Context, r *Registry, duration time.Duration) {
	capitan.Emit(ctx, SignalRegistryBuilt,
		KeySize.Field(r.Len()),
		KeyDuration.Field(duration),
	)
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, codec string, size int) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyCodec.Field(codec),
		KeySize.Field(size),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, codec string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCodec.Field(codec),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, codec string, mode Mode) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyCodec.Field(codec),
		KeyMode.Field(mode.String()),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, codec string, mode Mode, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCodec.Field(codec),
		KeyMode.Field(mode.String()),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitDetectStart emits an event when detection begins.
func emitDetectStart(ctx context.Context, size int) {
	capitan.Emit(ctx, SignalDetectStart,
		KeySize.Field(size),
	)
}

// emitDetectComplete emits an event when detection finishes.
func emitDetectComplete(ctx context.Context, size, candidates int, duration time.Duration) {
	capitan.Emit(ctx, SignalDetectComplete,
		KeySize.Field(size),
		KeyCandidates.Field(candidates),
		KeyDuration.Field(duration),
	)
}

// emitExplainComplete emits an event when an explain run finishes.
// A decode failure is the normal subject of an explanation, so only
// resolution errors are reported at error severity.
func emitExplainComplete(ctx context.Context, codec string, mode Mode, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCodec.Field(codec),
		KeyMode.Field(mode.String()),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalExplainComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalExplainComplete, fields...)
	}
}
