package feed

import "strings"

const loggedOutIntro = "Login to share your thoughts about me!"

// ViewState is the login-dependent visibility of the About page.
type ViewState struct {
	LoggedIn       bool
	AuthURL        string // login or logout link from /home
	HistoryVisible bool
}

// LoginStateFromHome builds a ViewState from the /home response body.
// The visitor is logged in when the body is a logout link.
func LoginStateFromHome(url string) ViewState {
	var v ViewState
	v.SetHome(url)
	return v
}

// SetHome records the /home response body.
func (v *ViewState) SetHome(url string) {
	v.AuthURL = url
	v.LoggedIn = strings.Contains(url, "logout")
}

// ToggleHistory flips comment history visibility and returns the new value.
func (v *ViewState) ToggleHistory() bool {
	v.HistoryVisible = !v.HistoryVisible
	return v.HistoryVisible
}

// Apply writes the state into the page. Elements the page lacks are skipped.
func (v *ViewState) Apply(p *Page) {
	if ref, err := p.Element(ReferenceID); err == nil {
		if ref.Attr("href") == "" && v.AuthURL != "" {
			ref.SetAttr("href", v.AuthURL)
		}
		if v.LoggedIn {
			ref.SetText("logout")
		} else {
			ref.SetText("login")
		}
	}

	if form, err := p.Element(FormID); err == nil {
		if v.LoggedIn {
			form.SetDisplay("inline")
		} else {
			form.SetDisplay("none")
		}
	}

	if !v.LoggedIn {
		if intro, err := p.Element(IntroID); err == nil {
			intro.SetText(loggedOutIntro)
		}
	}

	if history, err := p.Element(HistoryID); err == nil {
		if v.HistoryVisible {
			history.SetDisplay("block")
		} else {
			history.SetDisplay("none")
		}
	}
}
