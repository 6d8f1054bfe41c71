package main

import (
	"flag"
	"log"

	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	path := flag.String("path", "migrations", "diretório das migrações")
	flag.Parse()

	if err := database.RunMigrations(*path); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
