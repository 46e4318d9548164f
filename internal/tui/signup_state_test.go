package tui

import (
	"errors"
	"testing"

	"github.com/wallie/wallie/internal/countries"
)

var testCountries = []countries.Country{
	{Code: "US", Name: "United States of America", CallingCode: "+1"},
	{Code: "FR", Name: "France", CallingCode: "+33"},
	{Code: "JP", Name: "Japan", CallingCode: "+81"},
}

func TestNewSignUpState(t *testing.T) {
	s := NewSignUpState()

	if s.PasswordVisible {
		t.Error("password should start masked")
	}
	if s.ModalOpen {
		t.Error("modal should start closed")
	}
	if s.Selected != -1 {
		t.Errorf("Selected = %d, want -1", s.Selected)
	}
	if _, ok := s.SelectedCountry(); ok {
		t.Error("no country should be selected before load")
	}
}

func TestTogglePasswordTwiceRestores(t *testing.T) {
	s := NewSignUpState()

	once := s.TogglePassword()
	if !once.PasswordVisible {
		t.Error("first toggle should reveal the password")
	}
	if twice := once.TogglePassword(); twice.PasswordVisible != s.PasswordVisible {
		t.Error("second toggle should restore masking")
	}
}

func TestApplyLoad(t *testing.T) {
	tests := []struct {
		name         string
		result       countries.LoadResult
		wantLen      int
		wantSelected int
	}{
		{"default present", countries.LoadResult{Countries: testCountries, Selected: 0}, 3, 0},
		{"default absent", countries.LoadResult{Countries: testCountries, Selected: -1}, 3, -1},
		{"failure", countries.LoadResult{Selected: -1, Err: errors.New("boom")}, 0, -1},
		{"out of range selection", countries.LoadResult{Countries: testCountries, Selected: 7}, 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSignUpState().ApplyLoad(tt.result)

			if len(s.Countries) != tt.wantLen {
				t.Errorf("len(Countries) = %d, want %d", len(s.Countries), tt.wantLen)
			}
			if s.Countries == nil {
				t.Error("Countries should be empty, not nil")
			}
			if s.Selected != tt.wantSelected {
				t.Errorf("Selected = %d, want %d", s.Selected, tt.wantSelected)
			}
		})
	}
}

func TestSelectCountry(t *testing.T) {
	base := NewSignUpState().ApplyLoad(countries.LoadResult{Countries: testCountries, Selected: 0}).OpenPicker()

	s := base.SelectCountry(2)
	if s.ModalOpen {
		t.Error("selecting should close the modal")
	}
	c, ok := s.SelectedCountry()
	if !ok || c.Code != "JP" {
		t.Errorf("SelectedCountry() = %v, %v, want JP", c, ok)
	}

	for _, i := range []int{-1, 3, 99} {
		s := base.SelectCountry(i)
		if s.ModalOpen {
			t.Errorf("SelectCountry(%d) should close the modal", i)
		}
		if s.Selected != 0 {
			t.Errorf("SelectCountry(%d) changed Selected to %d", i, s.Selected)
		}
	}
}

func TestDismissPickerKeepsSelection(t *testing.T) {
	s := NewSignUpState().
		ApplyLoad(countries.LoadResult{Countries: testCountries, Selected: 1}).
		OpenPicker().
		DismissPicker()

	if s.ModalOpen {
		t.Error("modal should be closed")
	}
	if s.Selected != 1 {
		t.Errorf("Selected = %d, want 1", s.Selected)
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	s := NewSignUpState()
	_ = s.TogglePassword()
	_ = s.OpenPicker()

	if s.PasswordVisible || s.ModalOpen {
		t.Error("transitions must return a new state, not modify the receiver")
	}
}
