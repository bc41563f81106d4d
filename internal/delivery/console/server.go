// Package console implements the interactive terminal surface of the
// storefront client.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// Params holds dependencies for the console server
type Params struct {
	fx.In
	fx.Lifecycle

	Cfg      *config.Config
	Logger   *slog.Logger
	Cart     usecase.CartUsecase
	Checkout usecase.CheckoutUsecase
	Browser  usecase.BrowserUsecase
	Sessions usecase.SessionUsecase
	Admin    usecase.AdminUsecase
}

type consoleServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	cart     usecase.CartUsecase
	checkout usecase.CheckoutUsecase
	browser  usecase.BrowserUsecase
	sessions usecase.SessionUsecase
	admin    usecase.AdminUsecase

	in       *bufio.Scanner
	out      io.Writer
	validate *validator.Validate
}

// NewServer creates the interactive console delivery.
func NewServer(params Params) (delivery.Delivery, error) {
	srv := &consoleServer{
		cfg:      params.Cfg,
		logger:   params.Logger,
		cart:     params.Cart,
		checkout: params.Checkout,
		browser:  params.Browser,
		sessions: params.Sessions,
		admin:    params.Admin,
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
		validate: validator.New(),
	}

	// Views re-render from broadcasts instead of a full reload.
	params.Cart.Subscribe(func(cart entity.Cart) {
		fmt.Fprintf(srv.out, "[cart] %d item(s), total %s\n", cart.Quantity(), formatPrice(cart.Total()))
	})
	params.Sessions.Subscribe(func(session *entity.Session) {
		if session == nil {
			fmt.Fprintln(srv.out, "[session] signed out")

			return
		}
		fmt.Fprintf(srv.out, "[session] signed in as %s\n", session.Profile.Name)
	})

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Debug("Console shutting down")

			return nil
		},
	})

	return srv, nil
}

// Serve runs the interactive loop until EOF, quit or context cancellation.
func (s *consoleServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting console",
		slog.String("api", s.cfg.API.BaseURL),
	)

	fmt.Fprintln(s.out, "storefront console. Type 'help' for commands.")
	if session := s.sessions.Current(ctx); session != nil {
		fmt.Fprintf(s.out, "signed in as %s\n", session.Profile.Name)
	}

	if _, err := s.browser.ListProducts(ctx); err != nil {
		s.reportError(err)
	} else {
		s.renderProducts(s.browser.Products())
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Fprint(s.out, "> ")
		line, ok := s.readLine()
		if !ok {
			return nil
		}
		if line == "" {
			continue
		}

		if quit := s.dispatch(ctx, line); quit {
			return nil
		}
	}
}

// dispatch executes one command line and reports whether the loop should end.
func (s *consoleServer) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	switch command {
	case "help":
		s.renderHelp()
	case "products", "ls":
		s.listProducts(ctx)
	case "open":
		s.openProduct(ctx, args)
	case "close":
		s.browser.CloseProduct()
	case "next":
		s.moveCarousel(s.browser.NextImage())
	case "prev":
		s.moveCarousel(s.browser.PrevImage())
	case "goto":
		s.selectImage(args)
	case "image":
		s.fetchImage(ctx)
	case "add":
		s.addToCart(ctx)
	case "cart":
		s.renderCart(s.cart.Cart())
	case "inc":
		s.adjustQuantity(ctx, args, 1)
	case "dec":
		s.adjustQuantity(ctx, args, -1)
	case "rm":
		s.removeItem(ctx, args)
	case "checkout":
		s.runCheckout(ctx)
	case "login":
		s.login(ctx)
	case "register":
		s.register(ctx)
	case "logout":
		s.logout(ctx)
	case "whoami":
		s.whoami(ctx)
	case "admin":
		s.enterAdmin(ctx)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q, try 'help'\n", command)
	}

	return false
}

func (s *consoleServer) renderHelp() {
	fmt.Fprint(s.out, `commands:
  products            list the catalog
  open <n>            open product n from the last listing
  next / prev         move through the open product's images
  goto <i>            jump to image i of the open product
  image               download the current image to a file
  close               close the open product
  add                 add the open product to the cart
  cart                show the cart
  inc <n> / dec <n>   change quantity of cart line n
  rm <n>              remove cart line n
  checkout            place an order for the cart
  login / register    sign in or create an account
  logout / whoami     session management
  admin               enter the admin console
  quit                leave
`)
}

// readLine reads one trimmed line, reporting false on EOF.
func (s *consoleServer) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.in.Text()), true
}

// reportError surfaces err's user-facing message on the console and keeps
// the full chain in the log.
func (s *consoleServer) reportError(err error) {
	s.logger.Warn("Command failed", slog.Any("error", err))
	fmt.Fprintf(s.out, "error: %s\n", domainerrors.UserMessage(err))
}

// formatPrice renders a price in whole currency units.
func formatPrice(price int64) string {
	return fmt.Sprintf("₹%d", price)
}
