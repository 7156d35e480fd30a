package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/spikemate/mobile-core/internal/api"
	"github.com/spikemate/mobile-core/internal/cart"
	"github.com/spikemate/mobile-core/internal/catalog"
	"github.com/spikemate/mobile-core/internal/checkout"
	"github.com/spikemate/mobile-core/internal/home"
	"github.com/spikemate/mobile-core/internal/matches"
	"github.com/spikemate/mobile-core/internal/orders"
	"github.com/spikemate/mobile-core/internal/session"
	"github.com/spikemate/mobile-core/internal/tournaments"
	"github.com/spikemate/mobile-core/pkg/config"
	"github.com/spikemate/mobile-core/pkg/logger"
	"github.com/spikemate/mobile-core/pkg/storage"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "spikemate"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "spikemate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	store, err := storage.Open(ctx, cfg.Storage, logg)
	if err != nil {
		logg.Error(ctx, "failed to open device storage", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(ctx, "error closing device storage", err)
		}
	}()

	client, err := api.NewClient(cfg.API.BaseURL, api.WithTimeout(cfg.API.Timeout))
	if err != nil {
		logg.Error(ctx, "failed to build api client", err)
		os.Exit(1)
	}

	sess := session.NewManager(ctx, client, store, logg)
	client.SetTokenSource(sess)

	basket := cart.New(nil)
	catalogSvc := catalog.NewService(client)
	orderSvc := orders.NewService(client)
	checkoutSvc := checkout.NewService(basket, sess, orderSvc, logg)
	matchSvc := matches.NewService(client, sess)
	tournamentSvc := tournaments.NewService(client)
	homeSvc := home.NewService(matchSvc, tournamentSvc, catalogSvc, logg)

	email := flag.String("email", "", "sign in with this account before running the demo flow")
	password := flag.String("password", "", "password for -email")
	flag.Parse()

	if *email != "" {
		if err := sess.Login(ctx, session.Credentials{Email: *email, Password: *password}); err != nil {
			logg.Error(ctx, "login failed", err)
			os.Exit(1)
		}
	}

	if sess.IsAuthenticated() {
		logg.Info(logg.WithUserID(ctx, sess.CurrentUserID()), "session active")
	} else {
		logg.Info(ctx, "browsing anonymously")
	}

	feed, err := homeSvc.Load(ctx)
	if err != nil {
		logg.Warn(ctx, "home feed loaded partially: "+err.Error())
	}
	fmt.Printf("matches: %d  tournaments: %d  products: %d\n",
		len(feed.Matches), len(feed.Tournaments), len(feed.Products))

	if !sess.IsAuthenticated() || len(feed.Products) == 0 {
		return
	}

	// Demo checkout: one unit of the first product in the catalog.
	first := feed.Products[0]
	if err := basket.AddItem(first); err != nil {
		logg.Error(ctx, "could not add product to cart", err)
		os.Exit(1)
	}

	order, err := checkoutSvc.SubmitOrder(ctx)
	if err != nil {
		logg.Error(ctx, "checkout failed", err)
		os.Exit(1)
	}
	fmt.Printf("order %s placed, total %.2f\n", order.ID, order.Total)
}
