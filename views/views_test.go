package views

import (
	"testing"

	"github.com/Bios-Marcel/authbuttons/data"
	"github.com/stretchr/testify/assert"
)

func TestAuthButtons(t *testing.T) {
	html := AuthButtons([]data.Link{
		{Text: "Sign In", Href: "/signin"},
		{Text: "Sign Up", Href: "/signup"},
	})

	assert.Equal(t, `<nav class="auth-buttons"><a href="/signin">Sign In</a><a href="/signup">Sign Up</a></nav>`, html)
}

func TestAuthButtonsEmpty(t *testing.T) {
	assert.Equal(t, `<nav class="auth-buttons"></nav>`, AuthButtons(nil))
}

func TestAuthButtonsEscapes(t *testing.T) {
	html := AuthButtons([]data.Link{{Text: "<b>", Href: `/"x`}})
	assert.Equal(t, `<nav class="auth-buttons"><a href="/&quot;x">&lt;b&gt;</a></nav>`, html)
}

func TestIndex(t *testing.T) {
	html := Index([]data.Link{{Text: "Sign Out", Href: "/signout"}}, data.SignedInAs(data.Identity{ID: 3, Email: "asdf@asdf.com"}))

	assert.Contains(t, html, `<title>Home</title>`)
	assert.Contains(t, html, `<header><nav class="auth-buttons"><a href="/signout">Sign Out</a></nav></header>`)
	assert.Contains(t, html, `Signed in as asdf@asdf.com.`)

	html = Index(nil, data.SignedOut())
	assert.Contains(t, html, `You are not signed in.`)
}

func TestSigninAndSignup(t *testing.T) {
	assert.NotContains(t, Signin(false), `class="error"`)
	assert.Contains(t, Signin(true), `Wrong email or password.`)

	assert.Contains(t, Signup(""), `action="/signup"`)
	assert.Contains(t, Signup("email already taken"), `<p class="error">email already taken</p>`)
}
