package main

import (
	"flag"
	"log"

	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/models"
	"pdao/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "staff email address")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		log.Fatal("Usage: add_user -email ... -password ... -first ... -last ...")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	log.Printf("Created staff user %s (%s)", user.Email, user.ID)
}
