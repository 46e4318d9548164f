package tui

import "github.com/wallie/wallie/internal/countries"

// SignUpState is everything the sign-up screen remembers between key
// presses. Transitions are pure: each method returns the next state.
//
// Selected is -1 or a valid index into Countries.
type SignUpState struct {
	PasswordVisible bool
	Countries       []countries.Country
	Selected        int
	ModalOpen       bool
}

// NewSignUpState returns the state of a freshly mounted screen.
func NewSignUpState() SignUpState {
	return SignUpState{Selected: -1}
}

// SelectedCountry returns the active calling code entry, if any.
func (s SignUpState) SelectedCountry() (countries.Country, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Countries) {
		return countries.Country{}, false
	}
	return s.Countries[s.Selected], true
}

// TogglePassword flips password masking.
func (s SignUpState) TogglePassword() SignUpState {
	s.PasswordVisible = !s.PasswordVisible
	return s
}

// OpenPicker shows the calling code modal.
func (s SignUpState) OpenPicker() SignUpState {
	s.ModalOpen = true
	return s
}

// SelectCountry makes entry i the active calling code and closes the modal.
// An index outside the list only closes the modal.
func (s SignUpState) SelectCountry(i int) SignUpState {
	if i >= 0 && i < len(s.Countries) {
		s.Selected = i
	}
	s.ModalOpen = false
	return s
}

// DismissPicker closes the modal without touching the selection.
func (s SignUpState) DismissPicker() SignUpState {
	s.ModalOpen = false
	return s
}

// ApplyLoad stores the result of the directory load.
func (s SignUpState) ApplyLoad(r countries.LoadResult) SignUpState {
	s.Countries = r.Countries
	if s.Countries == nil {
		s.Countries = []countries.Country{}
	}
	s.Selected = -1
	if r.Selected >= 0 && r.Selected < len(s.Countries) {
		s.Selected = r.Selected
	}
	return s
}
