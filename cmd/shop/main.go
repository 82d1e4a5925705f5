package main

import (
	"fmt"
	"os"

	"shop/internal/cli"
	"shop/internal/config"
	"shop/internal/infra/db"
	infraRepo "shop/internal/infra/repository"
	"shop/internal/usecase"
	"shop/internal/validator"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "shop is an interactive command-line store.",
	Long: `shop registers users, manages a product catalog, keeps a per-user
cart and turns the cart into an order. State lives in a local database
(sqlite by default, postgres via SHOP_DB_DRIVER=postgres).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// .envは無くてもよい
		_ = godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		gormDB, err := db.Connect(cfg)
		if err != nil {
			return fmt.Errorf("connect db: %w", err)
		}
		if err := db.Migrate(gormDB); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		// Repository（GORM実装）生成
		userRepo := infraRepo.NewUserGormRepository(gormDB)
		productRepo := infraRepo.NewProductGormRepository(gormDB)
		cartRepo := infraRepo.NewCartGormRepository(gormDB)
		txManager := infraRepo.NewTxManagerGorm(gormDB)

		// Usecase生成
		accountUC := usecase.NewAccountUsecase(userRepo, validator.NewAccountValidator())
		catalogUC := usecase.NewCatalogUsecase(productRepo)
		cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
		orderUC := usecase.NewOrderUsecase(txManager)

		menu := cli.NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), accountUC, catalogUC, cartUC, orderUC)
		return menu.Run(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
