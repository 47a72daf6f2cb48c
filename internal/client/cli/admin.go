package cli

import (
	"context"
	"fmt"
	"log"
)

// Contributions lists visitor submissions awaiting review.
func (a *App) Contributions(ctx context.Context) {
	list, err := a.client.ListContributions(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	for _, c := range list {
		status := " "
		if c.Reviewed {
			status = "R"
		}
		fmt.Fprintf(a.out, "[%s] %s  %s — %s\n", status, c.ID, c.Name, c.Subject)
	}
}

func (a *App) ReviewContribution(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Enter contribution id", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.client.MarkContributionReviewed(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	log.Println("Marked reviewed")
}

func (a *App) DeleteContribution(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Enter contribution id to delete", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if !Confirm(a.reader, fmt.Sprintf("Delete contribution %s?", id), a.out) {
		return
	}

	if err := a.client.DeleteContribution(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	log.Println("Deleted")
}

func (a *App) Users(ctx context.Context) {
	list, err := a.client.ListUsers(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	for _, u := range list {
		role := "editor"
		if u.IsAdmin {
			role = "admin"
		}
		fmt.Fprintf(a.out, "%s  %s (%s)\n", u.ID, u.Email, role)
	}
}

// InviteUser creates an editor account and prints its one-time password.
func (a *App) InviteUser(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email to invite", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	user, password, err := a.client.InviteUser(ctx, email)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Invited %s\nTemporary password: %s\n", user.Email, password)
}

func (a *App) DeleteUser(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Enter user id to delete", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if !Confirm(a.reader, fmt.Sprintf("Delete user %s?", id), a.out) {
		return
	}

	if err := a.client.DeleteUser(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	log.Println("Deleted")
}
