package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const loginTitleSize = 40

// LoginView is the username/password form.
type LoginView struct {
	Username       *widget.Entry
	Password       *widget.Entry
	LoginButton    *widget.Button
	RegisterButton *widget.Button

	content fyne.CanvasObject
}

func newLoginView(onLogin, onRegister func(username, password string)) *LoginView {
	v := &LoginView{
		Username: widget.NewEntry(),
		Password: widget.NewPasswordEntry(),
	}
	v.Username.SetPlaceHolder("Username")
	v.Password.SetPlaceHolder("Password")

	submit := func() {
		if onLogin != nil {
			onLogin(v.Username.Text, v.Password.Text)
		}
	}
	v.Password.OnSubmitted = func(string) { submit() }

	v.LoginButton = widget.NewButton("Login", submit)
	v.LoginButton.Importance = widget.HighImportance
	v.RegisterButton = widget.NewButton("Register", func() {
		if onRegister != nil {
			onRegister(v.Username.Text, v.Password.Text)
		}
	})

	title := canvas.NewText("Hiragana Practice", theme.Color(theme.ColorNameForeground))
	title.TextSize = loginTitleSize
	title.Alignment = fyne.TextAlignCenter

	v.content = container.NewPadded(container.NewVBox(
		layout.NewSpacer(),
		title,
		layout.NewSpacer(),
		v.Username,
		v.Password,
		container.NewGridWithColumns(2, v.LoginButton, v.RegisterButton),
		layout.NewSpacer(),
	))
	return v
}

func (v *LoginView) Content() fyne.CanvasObject {
	return v.content
}
