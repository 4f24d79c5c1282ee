package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/pkg/constants"
	"gearguard/pkg/utils"
)

var usersData = []struct {
	Username string
	Name     string
	Role     string
	TeamName string
}{
	{Username: "tech1", Name: "Kalp Prajapati", Role: constants.RoleTechnician, TeamName: "IT Support"},
	{Username: "tech2", Name: "Krithik Naidu", Role: constants.RoleTechnician, TeamName: "Mechanics"},
	{Username: "admin", Name: "Rishabh", Role: constants.RoleManager},
}

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение пользователей...")

	// Пароль у всех демо-пользователей одинаковый
	hashed, err := utils.HashPassword("password")
	if err != nil {
		return err
	}

	for _, u := range usersData {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", u.Username).Scan(&existingID)
		if err == nil {
			log.Printf("    - Пользователь '%s' уже существует. Пропускаем.", u.Username)
			continue
		}

		var teamID *uint64
		if u.TeamName != "" {
			var id uint64
			if err := db.QueryRow(ctx, "SELECT id FROM teams WHERE name = $1", u.TeamName).Scan(&id); err != nil {
				return fmt.Errorf("не найдена команда '%s' для пользователя '%s': %w", u.TeamName, u.Username, err)
			}
			teamID = &id
		}

		_, err = db.Exec(ctx,
			"INSERT INTO users (username, password, name, role, team_id) VALUES ($1, $2, $3, $4, $5)",
			u.Username, hashed, u.Name, u.Role, teamID,
		)
		if err != nil {
			return fmt.Errorf("не удалось вставить пользователя '%s': %w", u.Username, err)
		}
	}
	return nil
}
