package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/researchhub/researchhub-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PaperRepo interface {
	CreatePaper(ctx context.Context, paper *types.Paper) error
	GetPaper(ctx context.Context, id string) (*types.Paper, error)
	ListPapers(ctx context.Context, userID string) ([]*types.Paper, error)
	UpdateOrganization(ctx context.Context, id string, category, tags, projectID string) error
	DeletePaper(ctx context.Context, id string) error
}

type paperRepo struct {
	collection *mongo.Collection
}

func NewPaperRepo(db *mongo.Database) PaperRepo {
	collection := db.Collection("papers")
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	}
	if _, err := collection.Indexes().CreateMany(context.Background(), indexes); err != nil {
		log.Printf("Error creating paper indexes: %v", err)
	}

	return &paperRepo{
		collection: collection,
	}
}

// CreatePaper assigns the server-side id and creation time before inserting.
func (r *paperRepo) CreatePaper(ctx context.Context, paper *types.Paper) error {
	if paper.ID == "" {
		paper.ID = bson.NewObjectID().Hex()
	}
	if paper.CreatedAt == 0 {
		paper.CreatedAt = time.Now().Unix()
	}
	_, err := r.collection.InsertOne(ctx, paper)
	return err
}

func (r *paperRepo) GetPaper(ctx context.Context, id string) (*types.Paper, error) {
	var paper types.Paper
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&paper)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *paperRepo) ListPapers(ctx context.Context, userID string) ([]*types.Paper, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var papers []*types.Paper
	for cursor.Next(ctx) {
		var paper types.Paper
		if err := cursor.Decode(&paper); err != nil {
			return nil, err
		}
		papers = append(papers, &paper)
	}
	return papers, cursor.Err()
}

// UpdateOrganization sets the post-hoc classification fields. Empty values
// are left untouched.
func (r *paperRepo) UpdateOrganization(ctx context.Context, id string, category, tags, projectID string) error {
	set := bson.M{}
	if category != "" {
		set["category"] = category
	}
	if tags != "" {
		set["tags"] = tags
	}
	if projectID != "" {
		set["project_id"] = projectID
	}
	if len(set) == 0 {
		return nil
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *paperRepo) DeletePaper(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}
