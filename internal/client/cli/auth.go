package cli

import (
	"context"
	"log"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	user, err := a.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}

	a.session.SetSession(user)
	log.Printf("Signed in as %s", user.Email)
}

// Logout drops the session locally. Tokens are stateless, so there is
// nothing to revoke server-side; the token simply stops being sent.
func (a *App) Logout(ctx context.Context) {
	a.client.SetToken("")
	a.session.SetSession(nil)
	a.closeEditor()
	log.Println("Signed out")
}

func (a *App) Passwd(ctx context.Context) {
	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.client.UpdatePassword(ctx, password); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	log.Println("Password updated")
}

// EditMode toggles inline editing for the session.
func (a *App) EditMode(ctx context.Context, on bool) {
	if err := a.session.SetEditMode(on); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	if !on {
		a.closeEditor()
	}
	if on {
		log.Println("Edit mode on")
	} else {
		log.Println("Edit mode off")
	}
}
