package console

import (
	"context"
	"fmt"
	"strings"
)

// enterAdmin gates the admin sub-console and runs its command loop.
func (s *consoleServer) enterAdmin(ctx context.Context) {
	if err := s.admin.Enter(ctx); err != nil {
		s.reportError(err)

		return
	}

	fmt.Fprintln(s.out, "admin console. Commands: products, new, del <n>, orders, back")

	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprint(s.out, "admin> ")
		line, ok := s.readLine()
		if !ok {
			return
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "products", "ls":
			s.listProducts(ctx)
		case "new":
			s.createProduct(ctx)
		case "del":
			s.deleteProduct(ctx, fields[1:])
		case "orders":
			s.listOrders(ctx)
		case "back", "exit":
			return
		default:
			fmt.Fprintf(s.out, "unknown admin command %q\n", fields[0])
		}
	}
}

func (s *consoleServer) createProduct(ctx context.Context) {
	input, ok := s.promptNewProduct()
	if !ok {
		return
	}

	products, err := s.admin.CreateProduct(ctx, input)
	if err != nil {
		s.reportError(err)

		return
	}

	s.renderProducts(products)
}

// deleteProduct confirms, deletes and renders the refreshed catalog. The
// catalog re-renders even when the delete itself failed.
func (s *consoleServer) deleteProduct(ctx context.Context, args []string) {
	index, ok := s.lineIndex(args, "usage: del <n>")
	if !ok {
		return
	}

	products := s.browser.Products()
	if index >= len(products) {
		fmt.Fprintf(s.out, "no product %d in the last listing\n", index+1)

		return
	}
	target := products[index]

	if !s.confirm(fmt.Sprintf("delete %q", target.Title)) {
		return
	}

	refreshed, err := s.admin.DeleteProduct(ctx, target.ID)
	if err != nil {
		s.reportError(err)
	}

	s.renderProducts(refreshed)
}

func (s *consoleServer) listOrders(ctx context.Context) {
	orders, err := s.admin.ListOrders(ctx)
	if err != nil {
		s.reportError(err)

		return
	}

	if len(orders) == 0 {
		fmt.Fprintln(s.out, "no orders")

		return
	}

	for _, order := range orders {
		fmt.Fprintf(s.out, "%s  %s  %s  %d item(s)\n",
			order.ID,
			order.CreatedAt.Format("2006-01-02 15:04"),
			formatPrice(order.Total),
			len(order.Items),
		)
		for _, item := range order.Items {
			fmt.Fprintf(s.out, "     %-30s %s x%d\n", item.Title, formatPrice(item.Price), item.Quantity)
		}
		fmt.Fprintf(s.out, "     deliver to %s, %s, %s %s\n",
			order.Customer.Name, order.Customer.Street, order.Customer.City, order.Customer.Pincode)
	}
}
