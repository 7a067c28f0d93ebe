package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"cakelandia_back_end/internal/utils"
)

// Génère la valeur ADMIN_PASSWORD_HASH à poser dans le .env :
//
//	go run ./cmd/hashpass [mot-de-passe]
func main() {
	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		fmt.Fprint(os.Stderr, "Mot de passe admin: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			log.Fatalf("❌ Erreur lecture: %v", err)
		}
		password = strings.TrimSpace(line)
	}
	if password == "" {
		log.Fatal("❌ Mot de passe vide")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("❌ Erreur génération hash: %v", err)
	}
	fmt.Println(hash)
}
