package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// deliveryDetailsForm validates the checkout capture. WhatsApp and pincode
// follow the numeric formats the order API accepts.
type deliveryDetailsForm struct {
	Name     string `validate:"required"`
	WhatsApp string `validate:"required,numeric,len=10"`
	City     string `validate:"required"`
	Street   string `validate:"required"`
	Pincode  string `validate:"required,numeric,len=6"`
	Landmark string
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type registerForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type productForm struct {
	Title       string   `validate:"required"`
	Description string   `validate:"required"`
	Price       int64    `validate:"gt=0"`
	ImagePaths  []string `validate:"required,min=1,dive,file"`
}

// promptField asks for one value; an empty answer keeps the default.
func (s *consoleServer) promptField(label, def string) (string, bool) {
	if def != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}

	line, ok := s.readLine()
	if !ok {
		return "", false
	}
	if line == "" {
		return def, true
	}

	return line, true
}

// reportValidation renders each failed field on its own line.
func (s *consoleServer) reportValidation(err error) {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		s.reportError(err)

		return
	}

	for _, fe := range fieldErrors {
		fmt.Fprintf(s.out, "invalid %s (%s)\n", strings.ToLower(fe.Field()), fe.Tag())
	}
}

func (s *consoleServer) promptDeliveryDetails(ctx context.Context) (entity.DeliveryDetails, bool) {
	saved := s.checkout.SavedDetails(ctx)

	form := deliveryDetailsForm{}
	fields := []struct {
		label string
		def   string
		dst   *string
	}{
		{"name", saved.Name, &form.Name},
		{"whatsapp", saved.WhatsApp, &form.WhatsApp},
		{"city", saved.City, &form.City},
		{"street", saved.Street, &form.Street},
		{"pincode", saved.Pincode, &form.Pincode},
		{"landmark (optional)", saved.Landmark, &form.Landmark},
	}
	for _, f := range fields {
		value, ok := s.promptField(f.label, f.def)
		if !ok {
			return entity.DeliveryDetails{}, false
		}
		*f.dst = value
	}

	if err := s.validate.Struct(form); err != nil {
		s.reportValidation(err)

		return entity.DeliveryDetails{}, false
	}

	return entity.DeliveryDetails{
		Name:     form.Name,
		WhatsApp: form.WhatsApp,
		City:     form.City,
		Street:   form.Street,
		Pincode:  form.Pincode,
		Landmark: form.Landmark,
	}, true
}

func (s *consoleServer) promptLogin() (loginForm, bool) {
	form := loginForm{}

	var ok bool
	if form.Email, ok = s.promptField("email", ""); !ok {
		return form, false
	}
	if form.Password, ok = s.promptField("password", ""); !ok {
		return form, false
	}

	if err := s.validate.Struct(form); err != nil {
		s.reportValidation(err)

		return form, false
	}

	return form, true
}

func (s *consoleServer) promptRegister() (registerForm, bool) {
	form := registerForm{}

	var ok bool
	if form.Name, ok = s.promptField("name", ""); !ok {
		return form, false
	}
	if form.Email, ok = s.promptField("email", ""); !ok {
		return form, false
	}
	if form.Password, ok = s.promptField("password", ""); !ok {
		return form, false
	}

	if err := s.validate.Struct(form); err != nil {
		s.reportValidation(err)

		return form, false
	}

	return form, true
}

func (s *consoleServer) promptNewProduct() (usecase.CreateProductInput, bool) {
	form := productForm{}

	var ok bool
	if form.Title, ok = s.promptField("title", ""); !ok {
		return usecase.CreateProductInput{}, false
	}
	if form.Description, ok = s.promptField("description", ""); !ok {
		return usecase.CreateProductInput{}, false
	}

	priceText, ok := s.promptField("price", "")
	if !ok {
		return usecase.CreateProductInput{}, false
	}
	price, err := strconv.ParseInt(priceText, 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "invalid price")

		return usecase.CreateProductInput{}, false
	}
	form.Price = price

	pathsText, ok := s.promptField("image paths (space separated)", "")
	if !ok {
		return usecase.CreateProductInput{}, false
	}
	form.ImagePaths = strings.Fields(pathsText)

	if err := s.validate.Struct(form); err != nil {
		s.reportValidation(err)

		return usecase.CreateProductInput{}, false
	}

	return usecase.CreateProductInput{
		Title:       form.Title,
		Description: form.Description,
		Price:       form.Price,
		ImagePaths:  form.ImagePaths,
	}, true
}

// confirm asks a yes/no question, defaulting to no.
func (s *consoleServer) confirm(question string) bool {
	fmt.Fprintf(s.out, "%s [y/N]: ", question)
	line, ok := s.readLine()
	if !ok {
		return false
	}

	return strings.EqualFold(line, "y") || strings.EqualFold(line, "yes")
}
