package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData наполняет базу демо-данными в порядке зависимостей:
// справочники, пользователи, оборудование.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демо-данными...")

	if err := seedCategories(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Категорий: %v", err)
	}
	if err := seedTeams(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Команд: %v", err)
	}
	if err := seedUsers(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Пользователей: %v", err)
	}
	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Оборудования: %v", err)
	}

	log.Println("✅ Наполнение демо-данными завершено!")
}
