// Command drinkwise is a terminal client for the shared-household drink
// ledger. It is a pure presentation layer: all session, transport and
// derived-view logic lives in the internal packages.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/hausbar/drinkwise/internal/core/domain"
	"github.com/hausbar/drinkwise/internal/core/ports"
	"github.com/hausbar/drinkwise/internal/core/report"
	"github.com/hausbar/drinkwise/internal/core/service"
	"github.com/hausbar/drinkwise/internal/infrastructure/config"
	"github.com/hausbar/drinkwise/internal/infrastructure/rest"
	"github.com/hausbar/drinkwise/internal/infrastructure/store"
	"github.com/hausbar/drinkwise/pkg/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			fmt.Fprintln(os.Stderr, "session expired, please log in again")
		} else if errors.Is(err, domain.ErrUnauthenticated) {
			fmt.Fprintln(os.Stderr, "not logged in, run: drinkwise login <username>")
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	if len(args) == 0 {
		figure.NewFigure("drinkwise", "", true).Print()
		usage()
		return nil
	}

	tokens, err := buildTokenStore(ctx, cfg)
	if err != nil {
		return err
	}

	api := rest.NewClient(cfg.APIBaseURL, tokens, newHTTPClient(cfg.Timeout), log)
	session := service.NewSessionService(api, tokens, log)
	houses := service.NewHouseService(api, log)
	inventory := service.NewInventoryService(api, log)

	switch args[0] {
	case "login":
		return cmdLogin(ctx, session, args[1:])
	case "logout":
		return session.Logout(ctx)
	case "register":
		return cmdRegister(ctx, session, args[1:])
	case "whoami":
		return cmdWhoami(ctx, session)
	case "houses":
		return cmdHouses(ctx, houses)
	case "house-create":
		return cmdHouseCreate(ctx, houses, args[1:])
	case "debts":
		return cmdDebts(ctx, houses, args[1:])
	case "shopping":
		return cmdShopping(ctx, houses, args[1:])
	case "drinks":
		return cmdDrinks(ctx, inventory)
	case "drink-add":
		return cmdDrinkAdd(ctx, inventory, args[1:])
	case "drink-update":
		return cmdDrinkUpdate(ctx, inventory, args[1:])
	case "drink-rm":
		return cmdDrinkRemove(ctx, inventory, args[1:])
	case "house-members":
		return cmdHouseMembers(ctx, houses, args[1:])
	case "restock":
		return cmdRestock(ctx, inventory, args[1:])
	case "take":
		return cmdTake(ctx, inventory, args[1:])
	case "history":
		return cmdHistory(ctx, inventory, args[1:])
	case "search-users":
		return cmdSearchUsers(ctx, houses, args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Println(`usage: drinkwise <command> [flags]

  login <username>          log in (password read from DRINKWISE_PASSWORD or prompt)
  logout                    drop the stored session
  register                  create an account
  whoami                    show the current user
  houses                    list your houses
  house-create <name>       create a house
  debts <house-id>          show who owes what
  shopping <house-id>       shopping list with replenishment estimate
  drinks                    list stocked drinks
  drink-add                 stock a new drink type
  drink-update <drink-id>   change name, price or threshold
  drink-rm <drink-id>       remove a drink type
  house-members <house-id> <user-id>...   replace a house's member list
  restock <drink-id> <qty>  add stock
  take <house-id> <drink-id> [qty]   log a consumption
  history [-window W]       consumption history (all|today|last_7_days|last_30_days)
  search-users <query>      find housemates by username`)
}

func buildTokenStore(ctx context.Context, cfg *config.Config) (ports.TokenStore, error) {
	switch cfg.TokenStore {
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		client, err := store.Connect(ctx, store.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client, cfg.Redis.TTL), nil
	case "file", "":
		path := cfg.TokenFile
		if path == "" {
			var err error
			if path, err = store.DefaultTokenPath(); err != nil {
				return nil, err
			}
		}
		return store.NewFileStore(path), nil
	default:
		return nil, fmt.Errorf("unknown token store %q", cfg.TokenStore)
	}
}

func cmdLogin(ctx context.Context, session ports.SessionService, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: drinkwise login <username>")
	}
	password := os.Getenv("DRINKWISE_PASSWORD")
	if password == "" {
		fmt.Print("password: ")
		if _, err := fmt.Scanln(&password); err != nil {
			return errors.New("password is required")
		}
	}

	user, err := session.Login(ctx, args[0], password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", user.Username)
	return nil
}

func cmdRegister(ctx context.Context, session ports.SessionService, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "username")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (min 8 characters)")
	first := fs.String("first-name", "", "first name")
	last := fs.String("last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := session.Register(ctx, ports.RegisterInput{
		Username:  *username,
		Email:     *email,
		Password:  *password,
		FirstName: *first,
		LastName:  *last,
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered %s, now run: drinkwise login %s\n", user.Username, user.Username)
	return nil
}

func cmdWhoami(ctx context.Context, session ports.SessionService) error {
	user, err := session.CurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s (#%d)", user.Username, user.ID)
	if user.Email != "" {
		fmt.Printf(" <%s>", user.Email)
	}
	fmt.Println()
	return nil
}

func cmdHouses(ctx context.Context, houses ports.HouseService) error {
	list, err := houses.List(ctx)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tMEMBERS\tDRINKS")
	for _, h := range list {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", h.ID, h.Name, len(h.Members), len(h.DrinkTypes))
	}
	return w.Flush()
}

func cmdHouseCreate(ctx context.Context, houses ports.HouseService, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: drinkwise house-create <name>")
	}
	house, err := houses.Create(ctx, ports.CreateHouseInput{Name: args[0]})
	if err != nil {
		return err
	}
	fmt.Printf("created house %q (#%d)\n", house.Name, house.ID)
	return nil
}

func cmdDebts(ctx context.Context, houses ports.HouseService, args []string) error {
	houseID, err := parseID(args, "usage: drinkwise debts <house-id>")
	if err != nil {
		return err
	}

	debts, err := houses.MemberDebts(ctx, houseID)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "MEMBER\tOWES")
	for _, d := range debts {
		fmt.Fprintf(w, "%s\t%s\n", d.UserName, d.TotalOwed.StringFixed(2))
	}
	return w.Flush()
}

func cmdShopping(ctx context.Context, houses ports.HouseService, args []string) error {
	houseID, err := parseID(args, "usage: drinkwise shopping <house-id>")
	if err != nil {
		return err
	}

	low, err := houses.ShoppingList(ctx, houseID)
	if err != nil {
		return err
	}

	estimate := report.EstimateReplenishment(low, report.DefaultRestockBatch)
	if len(estimate.Lines) == 0 {
		fmt.Println("all stocked up")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "DRINK\tSTOCK\tBUY\tCOST")
	for _, line := range estimate.Lines {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", line.Name, line.CurrentStock, line.NeededQuantity, line.EstimatedCost.StringFixed(2))
	}
	fmt.Fprintf(w, "TOTAL\t\t\t%s\n", estimate.TotalCost.StringFixed(2))
	return w.Flush()
}

func cmdDrinks(ctx context.Context, inventory ports.InventoryService) error {
	drinks, err := inventory.Drinks(ctx)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tHOUSE\tNAME\tPRICE\tSTOCK\tLOW")
	for _, d := range drinks {
		low := ""
		if d.LowStock() {
			low = "!"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\t%s\n", d.ID, d.House, d.Name, d.PricePerUnit.StringFixed(2), d.CurrentStock, low)
	}
	return w.Flush()
}

func cmdDrinkAdd(ctx context.Context, inventory ports.InventoryService, args []string) error {
	fs := flag.NewFlagSet("drink-add", flag.ContinueOnError)
	house := fs.Int64("house", 0, "house id")
	name := fs.String("name", "", "drink name")
	price := fs.String("price", "0", "price per unit, e.g. 1.50")
	threshold := fs.Int("threshold", report.DefaultRestockBatch, "low-stock threshold")
	stock := fs.Int("stock", 0, "initial stock")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pricePerUnit, err := parsePrice(*price)
	if err != nil {
		return err
	}

	drink, err := inventory.CreateDrink(ctx, ports.CreateDrinkInput{
		House:             *house,
		Name:              *name,
		PricePerUnit:      pricePerUnit,
		LowStockThreshold: *threshold,
		CurrentStock:      *stock,
	})
	if err != nil {
		return err
	}
	fmt.Printf("added %s (#%d) at %s per unit\n", drink.Name, drink.ID, drink.PricePerUnit.StringFixed(2))
	return nil
}

func cmdDrinkUpdate(ctx context.Context, inventory ports.InventoryService, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: drinkwise drink-update <drink-id> [flags]")
	}
	drinkID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid drink id %q", args[0])
	}

	fs := flag.NewFlagSet("drink-update", flag.ContinueOnError)
	name := fs.String("name", "", "new name")
	price := fs.String("price", "", "new price per unit")
	threshold := fs.Int("threshold", -1, "new low-stock threshold")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var input ports.UpdateDrinkInput
	if *name != "" {
		input.Name = name
	}
	if *price != "" {
		p, err := parsePrice(*price)
		if err != nil {
			return err
		}
		input.PricePerUnit = &p
	}
	if *threshold >= 0 {
		input.LowStockThreshold = threshold
	}

	drink, err := inventory.UpdateDrink(ctx, drinkID, input)
	if err != nil {
		return err
	}
	fmt.Printf("updated %s (#%d)\n", drink.Name, drink.ID)
	return nil
}

func cmdHouseMembers(ctx context.Context, houses ports.HouseService, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: drinkwise house-members <house-id> <user-id>...")
	}
	houseID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid house id %q", args[0])
	}
	memberIDs := make([]int64, 0, len(args)-1)
	for _, raw := range args[1:] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", raw)
		}
		memberIDs = append(memberIDs, id)
	}

	house, err := houses.UpdateMembers(ctx, houseID, ports.UpdateMembersInput{MemberIDs: memberIDs})
	if err != nil {
		return err
	}
	fmt.Printf("%s now has %d members\n", house.Name, len(house.Members))
	return nil
}

func cmdDrinkRemove(ctx context.Context, inventory ports.InventoryService, args []string) error {
	drinkID, err := parseID(args, "usage: drinkwise drink-rm <drink-id>")
	if err != nil {
		return err
	}
	if err := inventory.DeleteDrink(ctx, drinkID); err != nil {
		return err
	}
	fmt.Printf("removed drink #%d\n", drinkID)
	return nil
}

func cmdRestock(ctx context.Context, inventory ports.InventoryService, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: drinkwise restock <drink-id> <quantity>")
	}
	drinkID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid drink id %q", args[0])
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}

	drink, err := inventory.Restock(ctx, drinkID, quantity)
	if err != nil {
		return err
	}
	fmt.Printf("%s now at %d units\n", drink.Name, drink.CurrentStock)
	return nil
}

func cmdTake(ctx context.Context, inventory ports.InventoryService, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: drinkwise take <house-id> <drink-id> [quantity]")
	}
	houseID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid house id %q", args[0])
	}
	drinkID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid drink id %q", args[1])
	}
	quantity := 1
	if len(args) > 2 {
		if quantity, err = strconv.Atoi(args[2]); err != nil {
			return fmt.Errorf("invalid quantity %q", args[2])
		}
	}

	record, err := inventory.LogConsumption(ctx, ports.LogConsumptionInput{
		House:    houseID,
		DrinkID:  drinkID,
		Quantity: quantity,
	})
	if err != nil {
		return err
	}
	fmt.Printf("logged %d× %s for %s\n", record.Quantity, record.DrinkName, record.Cost.StringFixed(2))
	return nil
}

func cmdHistory(ctx context.Context, inventory ports.InventoryService, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	window := fs.String("window", "all", "time window: all, today, last_7_days, last_30_days")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := inventory.RecentConsumptions(ctx)
	if err != nil {
		return err
	}

	filtered := report.FilterByWindow(records, domain.ParseTimeWindow(*window), time.Now())
	summary := report.Summarize(filtered)

	w := newTable()
	fmt.Fprintln(w, "WHEN\tWHO\tWHAT\tCOST")
	for _, r := range filtered {
		fmt.Fprintf(w, "%s\t%s\t%d× %s\t%s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04"), r.UserName, r.Quantity, r.DrinkName, r.Cost.StringFixed(2))
	}
	fmt.Fprintf(w, "TOTAL\t%d drinks\t%d units\t%s\n", summary.Count, summary.TotalQuantity, summary.TotalCost.StringFixed(2))
	return w.Flush()
}

func cmdSearchUsers(ctx context.Context, houses ports.HouseService, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: drinkwise search-users <query>")
	}
	users, err := houses.SearchUsers(ctx, args[0])
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Username, u.Email)
	}
	return w.Flush()
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q", s)
	}
	return price, nil
}

func parseID(args []string, usageMsg string) (int64, error) {
	if len(args) < 1 {
		return 0, errors.New(usageMsg)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
