package console

import (
	"context"
	"fmt"
)

func (s *consoleServer) login(ctx context.Context) {
	form, ok := s.promptLogin()
	if !ok {
		return
	}

	if _, err := s.sessions.Login(ctx, form.Email, form.Password); err != nil {
		s.reportError(err)
	}
}

func (s *consoleServer) register(ctx context.Context) {
	form, ok := s.promptRegister()
	if !ok {
		return
	}

	if _, err := s.sessions.Register(ctx, form.Email, form.Password, form.Name); err != nil {
		s.reportError(err)
	}
}

func (s *consoleServer) logout(ctx context.Context) {
	if s.sessions.Current(ctx) == nil {
		fmt.Fprintln(s.out, "not signed in")

		return
	}

	if err := s.sessions.Logout(ctx); err != nil {
		s.reportError(err)
	}
}

func (s *consoleServer) whoami(ctx context.Context) {
	session := s.sessions.Current(ctx)
	if session == nil {
		fmt.Fprintln(s.out, "not signed in")

		return
	}

	fmt.Fprintf(s.out, "%s <%s>", session.Profile.Name, session.Profile.Email)
	if session.Profile.IsAdmin {
		fmt.Fprint(s.out, " (admin)")
	}
	fmt.Fprintln(s.out)
}
