package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"example.com/cashcompass/backend/internal/auth"
	"example.com/cashcompass/backend/internal/config"
	"example.com/cashcompass/backend/internal/database"
	"example.com/cashcompass/backend/internal/models"
	"example.com/cashcompass/backend/internal/repository"
)

var expenseCategories = []string{
	"Groceries", "Transport", "Rent", "Entertainment", "Health",
	"Dining", "Utilities", "Clothing", "Subscriptions",
}

var incomeCategories = []string{"Salary", "Freelance", "Gifts", "Investments"}

// Наполняет базу демонстрационными пользователями и записями.
func main() {
	users := flag.Int("users", 5, "number of demo users")
	entries := flag.Int("entries", 40, "entries per user")
	password := flag.String("password", "password123", "password for every demo user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	if err := database.RunMigrations(cfg.Database); err != nil {
		slog.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)

	passwordHash, err := auth.HashPassword(*password)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for i := 0; i < *users; i++ {
		email := fmt.Sprintf("demo%d@example.com", i+1)

		user, err := userRepo.Create(ctx, gofakeit.Name(), email, passwordHash)
		if err != nil {
			slog.Error("failed to create user", slog.String("email", email), slog.String("error", err.Error()))
			os.Exit(1)
		}

		batch := make([]models.Entry, 0, *entries)
		for j := 0; j < *entries; j++ {
			batch = append(batch, randomEntry(user))
		}

		if _, err := entryRepo.CreateBatch(ctx, batch); err != nil {
			slog.Error("failed to create entries", slog.String("email", email), slog.String("error", err.Error()))
			os.Exit(1)
		}

		limitCents := int64(gofakeit.Number(200, 800)) * 100
		if _, err := budgetRepo.Upsert(ctx, user.ID, limitCents); err != nil {
			slog.Error("failed to create budget", slog.String("email", email), slog.String("error", err.Error()))
			os.Exit(1)
		}

		slog.Info("seeded user", slog.String("email", email), slog.Int("entries", *entries))
	}
}

func randomEntry(user models.User) models.Entry {
	kind := models.EntryKindExpense
	category := expenseCategories[rand.Intn(len(expenseCategories))]
	if rand.Intn(4) == 0 {
		kind = models.EntryKindIncome
		category = incomeCategories[rand.Intn(len(incomeCategories))]
	}

	return models.Entry{
		UserID:      user.ID,
		Kind:        kind,
		Category:    category,
		AmountCents: int64(gofakeit.Number(100, 20000)),
		Note:        gofakeit.Sentence(5),
		OccursOn:    time.Now().AddDate(0, 0, -rand.Intn(30)),
	}
}
