// Seed popula o banco local com dados de desenvolvimento.
// Nunca rodar contra produção.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/OficinaTechBR/workshop-api/internal/config"
	dbpkg "github.com/OficinaTechBR/workshop-api/internal/db"
	"github.com/OficinaTechBR/workshop-api/internal/models"
	"github.com/OficinaTechBR/workshop-api/internal/timezone"
)

const seedPassword = "senha123"

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	gofakeit.Seed(42)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}

	now := timezone.Now()

	// ------------------------------
	// Admin
	// ------------------------------
	admin := models.User{
		Name:             "Admin",
		Email:            "admin@oficina.local",
		PasswordHash:     string(hash),
		Role:             models.RoleAdmin,
		EmailConfirmedAt: &now,
	}
	db.Where(models.User{Email: admin.Email}).FirstOrCreate(&admin)

	// ------------------------------
	// Mecânicos + agendas dos próximos 7 dias
	// ------------------------------
	var mechanics []models.User
	for i := 0; i < 3; i++ {
		m := models.User{
			Name:             gofakeit.Name(),
			Email:            fmt.Sprintf("mecanico%d@oficina.local", i+1),
			PasswordHash:     string(hash),
			Phone:            gofakeit.Phone(),
			Role:             models.RoleMechanic,
			EmailConfirmedAt: &now,
		}
		db.Where(models.User{Email: m.Email}).FirstOrCreate(&m)
		mechanics = append(mechanics, m)

		for d := 1; d <= 7; d++ {
			date := now.AddDate(0, 0, d).Format("2006-01-02")

			schedule := models.Schedule{MechanicID: m.ID, Date: date}
			schedule.SetHourList([]string{
				"08:00", "09:00", "10:00", "11:00",
				"14:00", "15:00", "16:00", "17:00",
			})

			db.Where(models.Schedule{MechanicID: m.ID, Date: date}).
				Attrs(models.Schedule{Hours: schedule.Hours}).
				FirstOrCreate(&schedule)
		}
	}

	// ------------------------------
	// Clientes + veículos
	// ------------------------------
	for i := 0; i < 10; i++ {
		client := models.User{
			Name:             gofakeit.Name(),
			Email:            fmt.Sprintf("cliente%d@oficina.local", i+1),
			PasswordHash:     string(hash),
			Phone:            gofakeit.Phone(),
			Role:             models.RoleClient,
			EmailConfirmedAt: &now,
		}
		db.Where(models.User{Email: client.Email}).FirstOrCreate(&client)

		car := gofakeit.Car()
		vehicle := models.Vehicle{
			OwnerID: client.ID,
			Plate:   fmt.Sprintf("%s%d%s%d%d", gofakeit.LetterN(3), gofakeit.Number(0, 9), gofakeit.Letter(), gofakeit.Number(0, 9), gofakeit.Number(0, 9)),
			Brand:   car.Brand,
			Model:   car.Model,
			Year:    car.Year,
			VIN:     gofakeit.LetterN(17),
		}
		db.Where(models.Vehicle{Plate: vehicle.Plate}).FirstOrCreate(&vehicle)
	}

	// ------------------------------
	// Peças de estoque
	// ------------------------------
	parts := []models.Part{
		{SKU: "OLEO-5W30", Name: "Óleo 5W30 1L", UnitPrice: 55.90, Stock: 40},
		{SKU: "FILTRO-OLEO", Name: "Filtro de óleo", UnitPrice: 32.50, Stock: 25},
		{SKU: "FILTRO-AR", Name: "Filtro de ar", UnitPrice: 48.00, Stock: 18},
		{SKU: "PASTILHA-FREIO", Name: "Jogo de pastilhas de freio", UnitPrice: 189.90, Stock: 12},
		{SKU: "VELA-IGNICAO", Name: "Vela de ignição", UnitPrice: 27.90, Stock: 60},
		{SKU: "CORREIA-DENTADA", Name: "Correia dentada", UnitPrice: 145.00, Stock: 8},
	}
	for i := range parts {
		parts[i].Active = true
		parts[i].Description = gofakeit.Sentence(6)
		db.Where(models.Part{SKU: parts[i].SKU}).FirstOrCreate(&parts[i])
	}

	log.Printf("seed concluído em %s (senha padrão: %s)", time.Now().Format(time.RFC3339), seedPassword)
}
