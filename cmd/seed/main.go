package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eksiblog/internal/config"
	"eksiblog/internal/db"
	"eksiblog/internal/model"
	"eksiblog/internal/repository"
)

const seedPassword = "password123"

type seedUser struct {
	firstName string
	lastName  string
	username  string
	email     string
	posts     []seedPost
}

type seedPost struct {
	title       string
	description string
}

var seedUsers = []seedUser{
	{
		firstName: "Ada", lastName: "Lovelace", username: "ada", email: "ada@example.com",
		posts: []seedPost{
			{title: "Notes on the Analytical Engine", description: "Observations on programmable machines."},
			{title: "On Poetical Science", description: "Imagination applied to mathematics."},
		},
	},
	{
		firstName: "Grace", lastName: "Hopper", username: "grace", email: "grace@example.com",
		posts: []seedPost{
			{title: "The First Compiler", description: "Teaching computers to speak English."},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	ctx := context.Background()

	usersCreated, postsCreated, err := seed(ctx, userRepo, postRepo)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", usersCreated)
	log.Printf("  - New posts created: %d", postsCreated)
}

// seed inserts the demo users and their posts, skipping rows that already
// exist so repeated runs are harmless.
func seed(ctx context.Context, userRepo repository.UserRepository, postRepo repository.PostRepository) (usersCreated, postsCreated int, err error) {
	for _, su := range seedUsers {
		user, err := userRepo.FindByEmail(ctx, su.email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return usersCreated, postsCreated, err
		}

		if user == nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
			if err != nil {
				return usersCreated, postsCreated, err
			}
			user = &model.User{
				FirstName:      su.firstName,
				LastName:       su.lastName,
				Username:       su.username,
				Email:          su.email,
				HashedPassword: string(hashed),
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return usersCreated, postsCreated, err
			}
			usersCreated++
			log.Printf("Created user %s (%s)", su.username, su.email)
		}

		for _, sp := range su.posts {
			existing, err := postRepo.FindByTitle(ctx, sp.title)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return usersCreated, postsCreated, err
			}
			if existing != nil {
				continue
			}
			post := &model.Post{
				Title:       sp.title,
				Description: sp.description,
				UserID:      user.ID,
			}
			if err := postRepo.Create(ctx, post); err != nil {
				return usersCreated, postsCreated, err
			}
			postsCreated++
			log.Printf("Created post %q for %s", sp.title, su.username)
		}
	}

	return usersCreated, postsCreated, nil
}
