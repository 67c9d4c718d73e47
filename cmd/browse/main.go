// Command browse is a terminal client for the HomeFind marketplace.
// It keeps the pay-to-view state on the local machine: which rental
// listings were opened and whether a viewing pass is active, persisted
// to a small JSON state file between runs.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kasozi/homefind/internal/access"
	"github.com/kasozi/homefind/internal/model"
)

func main() {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	server := fs.String("server", envOr("HOMEFIND_SERVER", "http://localhost:8080"), "marketplace server URL")
	stateFile := fs.String("state", defaultStatePath(), "path to local state file")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: browse [flags] <command> [args]

Commands:
  list                 list all properties
  featured             show featured properties
  category <name>      list properties in a category
  search <query>       search by title, location or property type
  view <id>            view full details of a property
  pay <transaction>    redeem a payment for a viewing pass
  status               show viewing pass and viewed listings

Flags:
  -server <url>        marketplace server (default: http://localhost:8080,
                       or HOMEFIND_SERVER)
  -state <path>        local state file
`)
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	app := &app{
		server:    *server,
		stateFile: *stateFile,
		client:    &http.Client{Timeout: 30 * time.Second},
		tracker:   access.NewTracker(),
	}
	app.loadState()

	var err error
	switch cmd := fs.Arg(0); cmd {
	case "list":
		err = app.list("/api/properties")
	case "featured":
		err = app.list("/api/properties/featured")
	case "category":
		if fs.NArg() < 2 {
			err = fmt.Errorf("usage: browse category <name>")
		} else {
			err = app.list("/api/properties/category/" + url.PathEscape(fs.Arg(1)))
		}
	case "search":
		if fs.NArg() < 2 {
			err = fmt.Errorf("usage: browse search <query>")
		} else {
			err = app.list("/api/properties/search?q=" + url.QueryEscape(strings.Join(fs.Args()[1:], " ")))
		}
	case "view":
		if fs.NArg() < 2 {
			err = fmt.Errorf("usage: browse view <id>")
		} else {
			err = app.view(fs.Arg(1))
		}
	case "pay":
		if fs.NArg() < 2 {
			err = fmt.Errorf("usage: browse pay <transaction>")
		} else {
			err = app.pay(fs.Arg(1))
		}
	case "status":
		app.status()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		fs.Usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	server    string
	stateFile string
	client    *http.Client
	tracker   *access.Tracker
	pass      string
}

// localState is the on-disk layout of the client's state file.
type localState struct {
	Access access.State `json:"access"`
	Pass   string       `json:"pass,omitempty"`
}

func (a *app) loadState() {
	data, err := os.ReadFile(a.stateFile)
	if err != nil {
		return
	}
	var s localState
	if err := json.Unmarshal(data, &s); err != nil {
		return
	}
	a.tracker = access.FromState(s.Access)
	a.pass = s.Pass
}

func (a *app) saveState() {
	s := localState{Access: a.tracker.State(), Pass: a.pass}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return
	}
	os.MkdirAll(filepath.Dir(a.stateFile), 0755)
	os.WriteFile(a.stateFile, data, 0600)
}

func (a *app) getJSON(path string, target any) error {
	resp, err := a.client.Get(a.server + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

func (a *app) list(path string) error {
	var props []model.Property
	if err := a.getJSON(path, &props); err != nil {
		return err
	}
	if len(props) == 0 {
		fmt.Println("No properties found.")
		return nil
	}
	for _, p := range props {
		marker := " "
		if a.tracker.HasViewed(p.ID) {
			marker = "*"
		}
		fmt.Printf("%s %4d  %-35s %-30s %s %d\n", marker, p.ID, trim(p.Title, 35), trim(p.Location, 30), "UGX", p.Price)
	}
	return nil
}

func (a *app) view(idArg string) error {
	var p model.Property
	if err := a.getJSON("/api/properties/"+idArg, &p); err != nil {
		return err
	}

	if !a.tracker.AllowAccess(p) {
		fmt.Printf("%q is a rental listing. Viewing rental details requires a viewing pass.\n", p.Title)
		fmt.Println()
		fmt.Println("Pay for a package via mobile money, then redeem the transaction:")
		fmt.Println("  standard (24 hours):  UGX 10,000")
		fmt.Println("  premium (30 days):    UGX 30,000")
		fmt.Println()
		fmt.Println("  browse pay <transaction-id>")
		return nil
	}

	if a.tracker.RecordView(p.ID) {
		a.saveState()
	}

	fmt.Printf("%s\n", p.Title)
	fmt.Printf("  Location:  %s\n", p.Location)
	fmt.Printf("  Price:     UGX %d\n", p.Price)
	fmt.Printf("  Type:      %s (%s)\n", p.PropertyType, p.Category)
	fmt.Printf("  Rooms:     %d bed, %.1f bath, %d sqft\n", p.Bedrooms, p.Bathrooms, p.SquareFeet)
	if p.Rating != "" {
		fmt.Printf("  Rating:    %s (%d reviews)\n", p.Rating, p.ReviewCount)
	}
	if len(p.Amenities) > 0 {
		fmt.Printf("  Amenities: %v\n", p.Amenities)
	}
	if p.HasTour && p.TourURL != "" {
		fmt.Printf("  Tour:      %s\n", p.TourURL)
	}
	if p.IsAuction() {
		fmt.Printf("  Auction:   %s, %s\n", p.BankName, p.AuctionDate.Format(time.RFC1123))
		fmt.Printf("  Bidding:   current UGX %d, increment UGX %d (%s)\n", p.CurrentBid, p.BidIncrement, p.AuctionStatus)
	}
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
	return nil
}

func (a *app) pay(transactionID string) error {
	body, _ := json.Marshal(map[string]string{"transaction_id": transactionID})
	resp, err := a.client.Post(a.server+"/api/verify-payment", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("payment not accepted: %s", apiErr.Error)
	}

	var result struct {
		AccessType string    `json:"access_type"`
		ExpiresAt  time.Time `json:"expires_at"`
		Pass       string    `json:"pass"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	tier := access.Tier(result.AccessType)
	if !tier.Valid() {
		return fmt.Errorf("server returned unknown access type %q", result.AccessType)
	}

	a.tracker.RegisterPayment(tier)
	a.pass = result.Pass
	a.saveState()

	fmt.Printf("Viewing pass activated: %s access until %s\n", result.AccessType, result.ExpiresAt.Format(time.RFC1123))
	return nil
}

func (a *app) status() {
	if expiry, ok := a.tracker.GrantExpiry(); ok {
		fmt.Printf("Viewing pass: active until %s\n", expiry.Format(time.RFC1123))
	} else {
		fmt.Println("Viewing pass: none")
	}
	fmt.Printf("Rental listings viewed: %d\n", a.tracker.ViewCount())
}

func trim(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".homefind-state.json"
	}
	return filepath.Join(home, ".homefind", "state.json")
}
