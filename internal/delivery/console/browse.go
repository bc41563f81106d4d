package console

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"storefront/internal/domain/entity"
)

func (s *consoleServer) listProducts(ctx context.Context) {
	products, err := s.browser.ListProducts(ctx)
	if err != nil {
		s.reportError(err)

		return
	}

	s.renderProducts(products)
}

func (s *consoleServer) renderProducts(products []entity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(s.out, "no products")

		return
	}

	for i, p := range products {
		fmt.Fprintf(s.out, "%3d. %-30s %s\n", i+1, p.Title, formatPrice(p.Price))
	}
}

// openProduct resolves its argument as a 1-based listing position first and
// falls back to a raw product id.
func (s *consoleServer) openProduct(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: open <n>")

		return
	}

	id := args[0]
	if n, err := strconv.Atoi(args[0]); err == nil {
		products := s.browser.Products()
		if n < 1 || n > len(products) {
			fmt.Fprintf(s.out, "no product %d in the last listing\n", n)

			return
		}
		id = products[n-1].ID
	}

	product, err := s.browser.OpenProduct(ctx, id)
	if err != nil {
		s.reportError(err)

		return
	}

	fmt.Fprintf(s.out, "%s\n%s\n%s\n", product.Title, product.Description, formatPrice(product.Price))
	if product.ImagesCount > 0 {
		fmt.Fprintf(s.out, "image 1/%d\n", product.ImagesCount)
	}
}

func (s *consoleServer) moveCarousel(index int) {
	active, _ := s.browser.Active()
	if active == nil {
		fmt.Fprintln(s.out, "no product is open")

		return
	}

	fmt.Fprintf(s.out, "image %d/%d\n", index+1, active.ImagesCount)
}

func (s *consoleServer) selectImage(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: goto <i>")

		return
	}

	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(s.out, "usage: goto <i>")

		return
	}

	// The carousel is 1-based on screen.
	s.moveCarousel(s.browser.SelectImage(i - 1))
}

// fetchImage downloads the open product's current image into a temp file.
func (s *consoleServer) fetchImage(ctx context.Context) {
	data, err := s.browser.FetchImage(ctx)
	if err != nil {
		s.reportError(err)

		return
	}

	active, index := s.browser.Active()
	name := fmt.Sprintf("%s-%d.jpg", active.ID, index+1)
	path := filepath.Join(os.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		s.reportError(err)

		return
	}

	fmt.Fprintf(s.out, "saved %s\n", path)
}
