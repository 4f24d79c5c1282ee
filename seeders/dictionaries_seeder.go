package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var categoriesData = []struct {
	Name        string
	Description string
}{
	{Name: "IT Hardware", Description: "Laptops, Servers, Networking"},
	{Name: "Industrial", Description: "Machinery and Production tools"},
}

var teamsData = []string{"IT Support", "Mechanics", "Electricians"}

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение категорий...")

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("ошибка при проверке категорий: %w", err)
	}
	if count > 0 {
		log.Println("    - Категории уже существуют. Пропускаем.")
		return nil
	}

	for _, c := range categoriesData {
		_, err := db.Exec(ctx, "INSERT INTO categories (name, description) VALUES ($1, $2)", c.Name, c.Description)
		if err != nil {
			return fmt.Errorf("не удалось вставить категорию '%s': %w", c.Name, err)
		}
	}
	return nil
}

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение команд...")

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM teams").Scan(&count); err != nil {
		return fmt.Errorf("ошибка при проверке команд: %w", err)
	}
	if count > 0 {
		log.Println("    - Команды уже существуют. Пропускаем.")
		return nil
	}

	for _, name := range teamsData {
		if _, err := db.Exec(ctx, "INSERT INTO teams (name) VALUES ($1)", name); err != nil {
			return fmt.Errorf("не удалось вставить команду '%s': %w", name, err)
		}
	}
	return nil
}
