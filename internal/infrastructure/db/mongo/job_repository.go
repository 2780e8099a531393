package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sewline/jobtrack-api/internal/core/domain"
	"github.com/sewline/jobtrack-api/internal/core/ports"
)

const jobsCollection = "jobs"

// JobRepository implements ports.JobRepository using MongoDB.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type jobDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	JobID      string             `bson:"job_id"`
	Customer   string             `bson:"customer"`
	Quantity   int                `bson:"quantity"`
	Defect     string             `bson:"defect,omitempty"`
	Date       time.Time          `bson:"date"`
	Time       string             `bson:"time,omitempty"`
	Status     string             `bson:"status"`
	Supervisor string             `bson:"supervisor,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d jobDoc) toDomain() *domain.Job {
	return &domain.Job{
		ID:         d.ID.Hex(),
		JobID:      d.JobID,
		Customer:   d.Customer,
		Quantity:   d.Quantity,
		Defect:     d.Defect,
		Date:       d.Date.UTC(),
		Time:       d.Time,
		Status:     domain.JobStatus(d.Status),
		Supervisor: d.Supervisor,
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := jobDoc{
		JobID:      job.JobID,
		Customer:   job.Customer,
		Quantity:   job.Quantity,
		Defect:     job.Defect,
		Date:       job.Date,
		Time:       job.Time,
		Status:     string(job.Status),
		Supervisor: job.Supervisor,
		CreatedAt:  job.CreatedAt,
		UpdatedAt:  job.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// List returns all jobs sorted by creation time, newest first.
func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := make([]*domain.Job, 0)
	for cur.Next(ctx) {
		var doc jobDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// UpdateByID applies a partial $set and returns the post-update document.
func (r *JobRepository) UpdateByID(ctx context.Context, id string, patch ports.JobPatch) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.Defect != nil {
		set["defect"] = *patch.Defect
	}
	if patch.Supervisor != nil {
		set["supervisor"] = *patch.Supervisor
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc jobDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the created_at index that backs the list ordering.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "job_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
