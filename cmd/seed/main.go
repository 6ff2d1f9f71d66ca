// Seeds the database with fake users and posts for local development.
//
//	go run ./cmd/seed -users 10 -posts 40
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"

	"ciaan_backend/bootstrap"
	"ciaan_backend/configs"
	"ciaan_backend/database"
	"ciaan_backend/internal/repository"
	"ciaan_backend/model"
	"ciaan_backend/services"
)

func main() {
	userCount := flag.Int("users", 10, "number of fake users")
	postCount := flag.Int("posts", 40, "number of fake posts")
	flag.Parse()

	cfg := configs.Load()
	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewMongoUserRepo(db)
	postRepo := repository.NewMongoPostRepo(db)
	engagement := services.NewEngagementService(postRepo)
	posts := services.NewPostService(postRepo)

	// Every seeded account logs in with the same password.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	users := make([]model.User, 0, *userCount)
	for i := 0; i < *userCount; i++ {
		u, err := userRepo.Insert(ctx, model.User{
			Username:       gofakeit.Username(),
			Email:          gofakeit.Email(),
			Password:       string(hash),
			Gender:         gofakeit.Gender(),
			ProfilePicture: model.DefaultProfilePicture,
		})
		if err != nil {
			log.Printf("skip user: %v", err)
			continue
		}
		users = append(users, u)
	}
	if len(users) == 0 {
		log.Fatal("no users inserted")
	}
	log.Printf("inserted %d users", len(users))

	for i := 0; i < *postCount; i++ {
		author := users[rand.Intn(len(users))]
		post, err := posts.CreatePost(ctx, author.ID,
			gofakeit.Sentence(4),
			gofakeit.Paragraph(1, 3, 10, " "),
			"", "")
		if err != nil {
			log.Printf("skip post: %v", err)
			continue
		}

		for _, u := range users {
			if rand.Intn(3) == 0 {
				if _, _, err := engagement.ToggleLike(ctx, post.ID, u.ID); err != nil {
					log.Printf("like: %v", err)
				}
			}
			if rand.Intn(5) == 0 {
				if _, err := engagement.AddComment(ctx, post.ID, u.ID, gofakeit.Sentence(6)); err != nil {
					log.Printf("comment: %v", err)
				}
			}
		}
	}
	log.Printf("seeding done in %s", cfg.DBName)
}
