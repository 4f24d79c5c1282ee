package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var equipmentData = []struct {
	Name          string
	SerialNumber  string
	Department    string
	OwnerName     string
	Location      string
	TeamName      string
	CategoryName  string
	TechnicianRef string
}{
	{
		Name: "MacBook Pro 16", SerialNumber: "SN12345", Department: "IT",
		OwnerName: "Green Swan", Location: "Workstation 4",
		TeamName: "IT Support", CategoryName: "IT Hardware", TechnicianRef: "tech1",
	},
	{
		Name: "CNC Machine v2", SerialNumber: "SN-CNC-001", Department: "Production",
		OwnerName: "Factory Floor", Location: "Sector B",
		TeamName: "Mechanics", CategoryName: "Industrial", TechnicianRef: "tech2",
	},
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение оборудования...")

	for _, e := range equipmentData {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM equipments WHERE serial_number = $1", e.SerialNumber).Scan(&existingID)
		if err == nil {
			log.Printf("    - Оборудование '%s' уже существует. Пропускаем.", e.SerialNumber)
			continue
		}

		var teamID, categoryID, technicianID uint64
		if err := db.QueryRow(ctx, "SELECT id FROM teams WHERE name = $1", e.TeamName).Scan(&teamID); err != nil {
			return fmt.Errorf("не найдена команда '%s': %w", e.TeamName, err)
		}
		if err := db.QueryRow(ctx, "SELECT id FROM categories WHERE name = $1", e.CategoryName).Scan(&categoryID); err != nil {
			return fmt.Errorf("не найдена категория '%s': %w", e.CategoryName, err)
		}
		if err := db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", e.TechnicianRef).Scan(&technicianID); err != nil {
			return fmt.Errorf("не найден техник '%s': %w", e.TechnicianRef, err)
		}

		_, err = db.Exec(ctx,
			`INSERT INTO equipments (name, serial_number, department, owner_name, location, team_id, category_id, default_technician_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			e.Name, e.SerialNumber, e.Department, e.OwnerName, e.Location, teamID, categoryID, technicianID,
		)
		if err != nil {
			return fmt.Errorf("не удалось вставить оборудование '%s': %w", e.SerialNumber, err)
		}
	}
	return nil
}
