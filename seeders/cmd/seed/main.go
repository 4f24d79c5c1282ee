package main

import (
	"flag"
	"log"

	"gearguard/migrations"
	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runMigrations := flag.Bool("migrate", false, "Применить миграции перед наполнением")
	runDemo := flag.Bool("demo", false, "Наполнить базу демо-данными (категории, команды, пользователи, оборудование)")

	flag.Parse()

	if !*runMigrations && !*runDemo {
		log.Println("❌ Не выбрана ни одна операция.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Пример использования:")
		log.Println("  go run ./seeders/cmd/seed/main.go -migrate -demo")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)

	if *runMigrations {
		if err := migrations.Up(cfg.Postgres.DSN); err != nil {
			log.Fatalf("❌ Ошибка применения миграций: %v", err)
		}
		log.Println("✅ Миграции применены.")
		log.Println("======================================================")
	}

	if *runDemo {
		dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
		defer dbPool.Close()

		seeders.SeedDemoData(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции успешно завершены.")
	log.Println("======================================================")
}
