package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"shop/internal/usecase"

	"github.com/fatih/color"
	"github.com/samber/mo"
)

var errBadNumber = errors.New("bad number")

// Menu はテキストメニューの前面。サービスへのディスパッチだけを持つ。
type Menu struct {
	accounts *usecase.AccountUsecase
	catalog  *usecase.CatalogUsecase
	carts    *usecase.CartUsecase
	orders   *usecase.OrderUsecase

	p   *prompter
	out io.Writer

	// 明示的なセッション。ログイン成功でセットし、プロセス終了まで戻らない。
	currentUserID *int64
}

func NewMenu(
	in io.Reader,
	out io.Writer,
	accounts *usecase.AccountUsecase,
	catalog *usecase.CatalogUsecase,
	carts *usecase.CartUsecase,
	orders *usecase.OrderUsecase,
) *Menu {
	return &Menu{
		accounts: accounts,
		catalog:  catalog,
		carts:    carts,
		orders:   orders,
		p:        newPrompter(in, out),
		out:      out,
	}
}

// Run は選択肢を読み続ける。Exit選択かEOFで抜ける。
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, err := m.p.readLine("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == "0" {
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, color.CyanString("E-commerce Management System"))
	fmt.Fprintln(m.out, "1. Register")
	fmt.Fprintln(m.out, "2. Login")
	fmt.Fprintln(m.out, "3. Add Product")
	fmt.Fprintln(m.out, "4. Update Product")
	fmt.Fprintln(m.out, "5. View Products")
	fmt.Fprintln(m.out, "6. Add to Cart")
	fmt.Fprintln(m.out, "7. View Cart")
	fmt.Fprintln(m.out, "8. Checkout")
	fmt.Fprintln(m.out, "9. My Orders")
	fmt.Fprintln(m.out, "0. Exit")
}

// dispatch は1選択を処理する。業務エラーは表示して nil を返し、ループを続ける。
func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return m.register(ctx)
	case "2":
		return m.login(ctx)
	case "3":
		return m.requireLogin(func(userID int64) error { return m.addProduct(ctx) })
	case "4":
		return m.requireLogin(func(userID int64) error { return m.updateProduct(ctx) })
	case "5":
		return m.viewProducts(ctx)
	case "6":
		return m.requireLogin(func(userID int64) error { return m.addToCart(ctx, userID) })
	case "7":
		return m.requireLogin(func(userID int64) error { return m.viewCart(ctx, userID) })
	case "8":
		return m.requireLogin(func(userID int64) error { return m.checkout(ctx, userID) })
	case "9":
		return m.requireLogin(func(userID int64) error { return m.myOrders(ctx, userID) })
	default:
		m.fail("Invalid choice. Please try again.")
		return nil
	}
}

// ログイン必須の操作をまとめる
func (m *Menu) requireLogin(fn func(userID int64) error) error {
	if m.currentUserID == nil {
		m.fail("You need to login first.")
		return nil
	}
	return fn(*m.currentUserID)
}

func (m *Menu) register(ctx context.Context) error {
	username, err := m.p.readLine("Enter username: ")
	if err != nil {
		return err
	}
	password, err := m.p.readLine("Enter password: ")
	if err != nil {
		return err
	}

	if _, err := m.accounts.Register(ctx, usecase.RegisterInput{Username: username, Password: password}); err != nil {
		m.showUsecaseError(err)
		return nil
	}

	m.ok("Registration successful")
	return nil
}

func (m *Menu) login(ctx context.Context) error {
	username, err := m.p.readLine("Enter username: ")
	if err != nil {
		return err
	}
	password, err := m.p.readLine("Enter password: ")
	if err != nil {
		return err
	}

	user, err := m.accounts.Login(ctx, usecase.LoginInput{Username: username, Password: password})
	if err != nil {
		m.showUsecaseError(err)
		return nil
	}

	id := user.ID
	m.currentUserID = &id
	m.ok("Login successful")
	return nil
}

func (m *Menu) addProduct(ctx context.Context) error {
	name, err := m.p.readLine("Enter product name: ")
	if err != nil {
		return err
	}
	description, err := m.p.readLine("Enter product description: ")
	if err != nil {
		return err
	}
	price, err := m.p.readFloat("Enter product price: ")
	if err != nil {
		return m.maybeInputError(err)
	}

	if _, err := m.catalog.AddProduct(ctx, usecase.AddProductInput{
		Name:        name,
		Description: description,
		Price:       price,
	}); err != nil {
		m.showUsecaseError(err)
		return nil
	}

	m.ok("Product added successfully")
	return nil
}

// 空欄は「変更しない」。値を入れればゼロや空文字も設定できる。
func (m *Menu) updateProduct(ctx context.Context) error {
	id, err := m.p.readInt64("Enter product id: ")
	if err != nil {
		return m.maybeInputError(err)
	}

	in := usecase.UpdateProductInput{}

	name, err := m.p.readLine("New name (blank to keep): ")
	if err != nil {
		return err
	}
	if name != "" {
		in.Name = mo.Some(name)
	}

	desc, err := m.p.readLine("New description (blank to keep): ")
	if err != nil {
		return err
	}
	if desc != "" {
		in.Description = mo.Some(desc)
	}

	priceStr, err := m.p.readLine("New price (blank to keep): ")
	if err != nil {
		return err
	}
	if priceStr != "" {
		price, perr := parsePrice(priceStr)
		if perr != nil {
			m.fail("Price must be a number.")
			return nil
		}
		in.Price = mo.Some(price)
	}

	if err := m.catalog.UpdateProduct(ctx, id, in); err != nil {
		m.showUsecaseError(err)
		return nil
	}

	m.ok("Product updated successfully")
	return nil
}

func (m *Menu) viewProducts(ctx context.Context) error {
	products, err := m.catalog.ListProducts(ctx)
	if err != nil {
		m.showUsecaseError(err)
		return nil
	}

	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products yet.")
		return nil
	}

	for _, p := range products {
		fmt.Fprintf(m.out, "ID: %d, Name: %s, Description: %s, Price: $%.2f\n",
			p.ID, p.Name, p.Description, p.Price)
	}
	return nil
}

func (m *Menu) addToCart(ctx context.Context, userID int64) error {
	productID, err := m.p.readInt64("Enter product id: ")
	if err != nil {
		return m.maybeInputError(err)
	}
	qty, err := m.p.readInt64("Enter quantity: ")
	if err != nil {
		return m.maybeInputError(err)
	}

	if err := m.carts.AddToCart(ctx, userID, usecase.AddToCartInput{ProductID: productID, Quantity: qty}); err != nil {
		m.showUsecaseError(err)
		return nil
	}

	m.ok("Item added to cart")
	return nil
}

func (m *Menu) viewCart(ctx context.Context, userID int64) error {
	view, err := m.carts.ViewCart(ctx, userID)
	if err != nil {
		m.showUsecaseError(err)
		return nil
	}

	for _, l := range view.Lines {
		fmt.Fprintf(m.out, "Product: %s, Quantity: %d, Price: $%.2f\n", l.Name, l.Quantity, l.UnitPrice)
	}
	fmt.Fprintf(m.out, "Total: $%.2f\n", view.Total)
	return nil
}

func (m *Menu) checkout(ctx context.Context, userID int64) error {
	out, err := m.orders.Checkout(ctx, userID)
	if err != nil {
		m.showUsecaseError(err)
		return nil
	}

	if len(out.Lines) == 0 {
		fmt.Fprintln(m.out, "Cart is empty. Nothing to checkout.")
		return nil
	}

	m.ok(fmt.Sprintf("Checkout successful (order %s, total $%.2f)", out.OrderRef, out.Total))
	return nil
}

func (m *Menu) myOrders(ctx context.Context, userID int64) error {
	lines, err := m.orders.ListOrders(ctx, userID)
	if err != nil {
		m.showUsecaseError(err)
		return nil
	}

	if len(lines) == 0 {
		fmt.Fprintln(m.out, "No orders yet.")
		return nil
	}

	for _, l := range lines {
		fmt.Fprintf(m.out, "[%s] %s x%d  $%.2f  (%s)\n",
			l.OrderDate.Format("2006-01-02 15:04"), l.Name, l.Quantity, l.TotalPrice, l.OrderRef)
	}
	return nil
}

// 数値の打ち間違いは表示だけして続行、EOFなどはそのまま返す
func (m *Menu) maybeInputError(err error) error {
	if errors.Is(err, errBadNumber) {
		m.fail("Please enter a number.")
		return nil
	}
	return err
}

func (m *Menu) showUsecaseError(err error) {
	switch {
	case errors.Is(err, usecase.ErrDuplicateUsername):
		m.fail("Username already exists")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		m.fail("Invalid credentials")
	case errors.Is(err, usecase.ErrProductNotFound):
		m.fail("Product not found")
	case errors.Is(err, usecase.ErrValidation):
		m.fail("Invalid input")
	default:
		m.fail("Something went wrong. Please try again.")
	}
}

func (m *Menu) ok(msg string) {
	fmt.Fprintln(m.out, color.GreenString(msg))
}

func (m *Menu) fail(msg string) {
	fmt.Fprintln(m.out, color.RedString(msg))
}
