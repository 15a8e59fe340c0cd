package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see bus traffic in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("driver_id", event.DriverID),
		slog.String("category", event.Category.String()),
	}

	if event.Device != "" {
		attrs = append(attrs, slog.String("device", event.Device))
	}
	if event.Channel != nil {
		attrs = append(attrs, slog.Uint64("channel", uint64(*event.Channel)))
	}

	// Add type-specific attributes
	switch {
	case event.Select != nil:
		attrs = append(attrs,
			slog.String("requested", maskString(event.Select.Requested)),
			slog.String("effective", maskString(event.Select.Effective)),
		)
	case event.Transfer != nil:
		attrs = append(attrs,
			slog.String("op", event.Transfer.Op.String()),
			slog.Uint64("addr", uint64(event.Transfer.Addr)),
		)
		if event.Transfer.WriteLen > 0 {
			attrs = append(attrs, slog.Int("write_len", event.Transfer.WriteLen))
		}
		if event.Transfer.ReadLen > 0 {
			attrs = append(attrs, slog.Int("read_len", event.Transfer.ReadLen))
		}
		if event.Transfer.SubOps > 0 {
			attrs = append(attrs, slog.Int("sub_ops", event.Transfer.SubOps))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("context", event.Error.Context),
			slog.String("error", event.Error.Message),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "bus event", attrs...)
}

// maskString formats a channel mask as a binary literal.
func maskString(mask uint8) string {
	const digits = "01"
	buf := []byte("0b00000000")
	for i := 0; i < 8; i++ {
		buf[len(buf)-1-i] = digits[(mask>>i)&1]
	}
	return string(buf)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
