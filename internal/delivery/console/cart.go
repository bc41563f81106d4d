package console

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"storefront/internal/domain/entity"
)

func (s *consoleServer) addToCart(ctx context.Context) {
	active, _ := s.browser.Active()
	if active == nil {
		fmt.Fprintln(s.out, "open a product first")

		return
	}

	cart, err := s.cart.AddItem(ctx, *active)
	if err != nil {
		s.reportError(err)

		return
	}

	s.renderCart(cart)
}

func (s *consoleServer) renderCart(cart entity.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(s.out, "the cart is empty")

		return
	}

	for i, item := range cart.Items {
		fmt.Fprintf(s.out, "%3d. %-30s %s x%d\n", i+1, item.Title, formatPrice(item.Price), item.Quantity)
	}
	fmt.Fprintf(s.out, "total: %s\n", formatPrice(cart.Total()))
}

// lineIndex parses a 1-based cart line argument into a 0-based index.
func (s *consoleServer) lineIndex(args []string, usage string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, usage)

		return 0, false
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintln(s.out, usage)

		return 0, false
	}

	return n - 1, true
}

func (s *consoleServer) adjustQuantity(ctx context.Context, args []string, delta int) {
	index, ok := s.lineIndex(args, "usage: inc <n> / dec <n>")
	if !ok {
		return
	}

	if err := s.cart.AdjustQuantity(ctx, index, delta); err != nil {
		s.reportError(err)
	}
}

func (s *consoleServer) removeItem(ctx context.Context, args []string) {
	index, ok := s.lineIndex(args, "usage: rm <n>")
	if !ok {
		return
	}

	if err := s.cart.RemoveItem(ctx, index); err != nil {
		s.reportError(err)
	}
}

// runCheckout captures delivery details, prefilled from the last order, and
// submits the cart.
func (s *consoleServer) runCheckout(ctx context.Context) {
	if s.cart.Cart().IsEmpty() {
		fmt.Fprintln(s.out, "the cart is empty")

		return
	}

	details, ok := s.promptDeliveryDetails(ctx)
	if !ok {
		return
	}

	confirmation, err := s.checkout.Submit(ctx, details)
	if err != nil {
		s.reportError(err)

		return
	}

	fmt.Fprintf(s.out, "order %s placed, total %s\n", confirmation.OrderID, formatPrice(confirmation.Total))

	if confirmation.QRPNG != nil {
		path := filepath.Join(os.TempDir(), "order-"+confirmation.OrderID+".png")
		if err := os.WriteFile(path, confirmation.QRPNG, 0o600); err == nil {
			fmt.Fprintf(s.out, "confirmation QR saved to %s\n", path)
		}
	}
}
