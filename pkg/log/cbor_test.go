package log

import (
	"testing"
	"time"
)

func chIdx(i uint8) *uint8 { return &i }

func sampleEvents() []Event {
	ts := time.Date(2025, 6, 14, 10, 30, 0, 123456789, time.UTC)
	return []Event{
		{
			Timestamp: ts,
			DriverID:  "6a1f0d2e-1111-2222-3333-444455556666",
			Device:    "TCA9548A",
			Category:  CategorySelect,
			Channel:   chIdx(3),
			Select:    &SelectEvent{Requested: 0xFF, Effective: 0x08},
		},
		{
			Timestamp: ts.Add(time.Millisecond),
			DriverID:  "6a1f0d2e-1111-2222-3333-444455556666",
			Device:    "TCA9548A",
			Category:  CategoryTransfer,
			Transfer: &TransferEvent{
				Op:       TransferWriteRead,
				Addr:     0x20,
				WriteLen: 1,
				ReadLen:  2,
			},
		},
		{
			Timestamp:   ts.Add(2 * time.Millisecond),
			DriverID:    "6a1f0d2e-1111-2222-3333-444455556666",
			Device:      "XCA9543A",
			Category:    CategoryState,
			StateChange: &StateChangeEvent{OldState: "OPEN", NewState: "RELEASED"},
		},
		{
			Timestamp: ts.Add(3 * time.Millisecond),
			DriverID:  "6a1f0d2e-1111-2222-3333-444455556666",
			Category:  CategoryError,
			Channel:   chIdx(0),
			Error:     &ErrorEventData{Context: "select", Message: "bus timeout"},
		},
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	for _, ev := range sampleEvents() {
		data, err := EncodeEvent(ev)
		if err != nil {
			t.Fatalf("EncodeEvent(%s): %v", ev.Category, err)
		}

		got, err := DecodeEvent(data)
		if err != nil {
			t.Fatalf("DecodeEvent(%s): %v", ev.Category, err)
		}

		if !got.Timestamp.Equal(ev.Timestamp) {
			t.Errorf("%s: timestamp = %v, want %v", ev.Category, got.Timestamp, ev.Timestamp)
		}
		if got.DriverID != ev.DriverID || got.Device != ev.Device || got.Category != ev.Category {
			t.Errorf("%s: identity fields differ: got %+v", ev.Category, got)
		}
		if (got.Channel == nil) != (ev.Channel == nil) {
			t.Fatalf("%s: channel presence differs", ev.Category)
		}
		if got.Channel != nil && *got.Channel != *ev.Channel {
			t.Errorf("%s: channel = %d, want %d", ev.Category, *got.Channel, *ev.Channel)
		}

		switch ev.Category {
		case CategorySelect:
			if got.Select == nil || *got.Select != *ev.Select {
				t.Errorf("select payload = %+v, want %+v", got.Select, ev.Select)
			}
		case CategoryTransfer:
			if got.Transfer == nil || *got.Transfer != *ev.Transfer {
				t.Errorf("transfer payload = %+v, want %+v", got.Transfer, ev.Transfer)
			}
		case CategoryState:
			if got.StateChange == nil || *got.StateChange != *ev.StateChange {
				t.Errorf("state payload = %+v, want %+v", got.StateChange, ev.StateChange)
			}
		case CategoryError:
			if got.Error == nil || *got.Error != *ev.Error {
				t.Errorf("error payload = %+v, want %+v", got.Error, ev.Error)
			}
		}
	}
}

func TestEncodeOmitsAbsentFields(t *testing.T) {
	minimal := Event{
		Timestamp: time.Now(),
		DriverID:  "id",
		Category:  CategorySelect,
		Select:    &SelectEvent{Requested: 1, Effective: 1},
	}
	full := minimal
	full.Device = "TCA9548A"
	full.Channel = chIdx(7)

	minData, err := EncodeEvent(minimal)
	if err != nil {
		t.Fatalf("EncodeEvent(minimal): %v", err)
	}
	fullData, err := EncodeEvent(full)
	if err != nil {
		t.Fatalf("EncodeEvent(full): %v", err)
	}
	if len(minData) >= len(fullData) {
		t.Errorf("minimal event (%d bytes) not smaller than full event (%d bytes)",
			len(minData), len(fullData))
	}
}

func TestCategoryStrings(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategorySelect, "SELECT"},
		{CategoryTransfer, "TRANSFER"},
		{CategoryState, "STATE"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}

	ops := []struct {
		op   TransferOp
		want string
	}{
		{TransferWrite, "WRITE"},
		{TransferRead, "READ"},
		{TransferWriteRead, "WRITE_READ"},
		{TransferTransact, "TRANSACT"},
		{TransferOp(99), "UNKNOWN"},
	}
	for _, tt := range ops {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("TransferOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
