package state

import (
	"encoding/json"
	"testing"

	"github.com/iwvelando/eurolens/internal/dataset"
	"github.com/iwvelando/eurolens/pkg/constants"
)

func codesEqual(got, want []dataset.CountryCode) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestDefaultSelection(t *testing.T) {
	want := []dataset.CountryCode{dataset.Germany, dataset.France, dataset.Italy, dataset.Spain}
	if got := DefaultSelection().Codes(); !codesEqual(got, want) {
		t.Errorf("DefaultSelection() = %v, want %v", got, want)
	}
}

func TestToggle(t *testing.T) {
	full := NewSelection(dataset.Germany, dataset.France, dataset.Italy, dataset.Spain, dataset.Netherlands, dataset.Belgium)

	tests := []struct {
		name   string
		start  Selection
		toggle dataset.CountryCode
		want   []dataset.CountryCode
	}{
		{
			name:   "adds to the end",
			start:  NewSelection(dataset.Germany),
			toggle: dataset.France,
			want:   []dataset.CountryCode{dataset.Germany, dataset.France},
		},
		{
			name:   "removes selected",
			start:  NewSelection(dataset.Germany, dataset.France, dataset.Italy),
			toggle: dataset.France,
			want:   []dataset.CountryCode{dataset.Germany, dataset.Italy},
		},
		{
			name:   "removes last leaving empty",
			start:  NewSelection(dataset.Germany),
			toggle: dataset.Germany,
			want:   nil,
		},
		{
			name:   "full selection ignores new country",
			start:  full,
			toggle: dataset.Austria,
			want:   full.Codes(),
		},
		{
			name:   "full selection still removes",
			start:  full,
			toggle: dataset.Belgium,
			want:   []dataset.CountryCode{dataset.Germany, dataset.France, dataset.Italy, dataset.Spain, dataset.Netherlands},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Toggle(tt.toggle)
			if !codesEqual(got.Codes(), tt.want) {
				t.Errorf("Toggle(%s) = %v, want %v", tt.toggle, got.Codes(), tt.want)
			}
		})
	}
}

func TestToggleDoesNotMutate(t *testing.T) {
	start := NewSelection(dataset.Germany, dataset.France)
	_ = start.Toggle(dataset.Italy)
	_ = start.Toggle(dataset.Germany)

	want := []dataset.CountryCode{dataset.Germany, dataset.France}
	if !codesEqual(start.Codes(), want) {
		t.Errorf("original selection changed to %v", start.Codes())
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	start := DefaultSelection()
	for _, meta := range dataset.Countries() {
		if start.Contains(meta.Code) {
			continue
		}
		if got := start.Toggle(meta.Code).Toggle(meta.Code); !got.Equal(start) {
			t.Errorf("toggling %s twice gave %v", meta.Code, got.Codes())
		}
	}
}

func TestSelectionNeverExceedsLimit(t *testing.T) {
	var s Selection
	for _, meta := range dataset.Countries() {
		s = s.Toggle(meta.Code)
		if s.Len() > constants.MaxSelectedCountries {
			t.Fatalf("selection grew to %d", s.Len())
		}
	}
	if !s.Full() {
		t.Errorf("expected a full selection after toggling every country")
	}
	for _, meta := range dataset.Countries() {
		if want := s.Contains(meta.Code); s.CanToggle(meta.Code) != want {
			t.Errorf("CanToggle(%s) = %v on a full selection", meta.Code, !want)
		}
	}
}

func TestNewSelectionDeduplicates(t *testing.T) {
	s := NewSelection(dataset.Germany, dataset.Germany, dataset.France)
	want := []dataset.CountryCode{dataset.Germany, dataset.France}
	if !codesEqual(s.Codes(), want) {
		t.Errorf("NewSelection() = %v, want %v", s.Codes(), want)
	}
}

func TestSelectionJSON(t *testing.T) {
	data, err := json.Marshal(NewSelection(dataset.Germany, dataset.France))
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(data) != `["DE","FR"]` {
		t.Errorf("unexpected JSON %s", data)
	}

	data, err = json.Marshal(Selection{})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("expected empty array for empty selection, got %s", data)
	}
}
