package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	coll *mongo.Collection
}

// NewProjectRepository creates a new project repository over the given collection
func NewProjectRepository(coll *mongo.Collection) *ProjectRepository {
	return &ProjectRepository{coll: coll}
}

// storedProject is the document shape on disk. _id is decoded raw because
// early documents were inserted with string ids.
type storedProject struct {
	ID               bson.RawValue `bson:"_id"`
	Title            string        `bson:"title"`
	ShortDescription string        `bson:"shortDescription"`
	LongDescription  string        `bson:"longDescription"`
	LiveLink         string        `bson:"liveLink"`
	GithubLink       string        `bson:"githubLink"`
	ImageURLs        []string      `bson:"imageUrls"`
	PdfURL           string        `bson:"pdfUrl"`
	Description      string        `bson:"description"`
	ImageURL         string        `bson:"imageUrl"`
}

type newProject struct {
	Title            string   `bson:"title"`
	ShortDescription string   `bson:"shortDescription"`
	LongDescription  string   `bson:"longDescription,omitempty"`
	LiveLink         string   `bson:"liveLink,omitempty"`
	GithubLink       string   `bson:"githubLink,omitempty"`
	ImageURLs        []string `bson:"imageUrls"`
	PdfURL           string   `bson:"pdfUrl,omitempty"`
}

// FindAll returns every project in insertion order.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Project, 0, 16)
	for cur.Next(ctx) {
		var doc storedProject
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}

// Insert stores a new project and returns the store-generated id.
func (r *ProjectRepository) Insert(ctx context.Context, p domain.Project) (string, error) {
	images := p.ImageURLs
	if images == nil {
		images = []string{}
	}
	doc := newProject{
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		LiveLink:         p.LiveLink,
		GithubLink:       p.GithubLink,
		ImageURLs:        images,
		PdfURL:           p.PdfURL,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert project: %w", err)
	}
	return idString(res.InsertedID), nil
}

// Update applies a $set of the supplied fields. Last writer wins.
func (r *ProjectRepository) Update(ctx context.Context, id string, f domain.Fields) error {
	filter := idFilter(id)

	if f.Empty() {
		n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
		if err != nil {
			return fmt.Errorf("count project: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: setDocument(f)}})
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the project with the given id.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Ping checks the underlying client against the primary.
func (r *ProjectRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

func setDocument(f domain.Fields) bson.D {
	set := bson.D{}
	add := func(key string, v *string) {
		if v != nil {
			set = append(set, bson.E{Key: key, Value: *v})
		}
	}
	add("title", f.Title)
	add("shortDescription", f.ShortDescription)
	add("longDescription", f.LongDescription)
	add("liveLink", f.LiveLink)
	add("githubLink", f.GithubLink)
	if f.ImageURLs != nil {
		images := *f.ImageURLs
		if images == nil {
			images = []string{}
		}
		set = append(set, bson.E{Key: "imageUrls", Value: images})
	}
	add("pdfUrl", f.PdfURL)
	return set
}

// idFilter matches ObjectID ids and, for anything that is not a hex ObjectID,
// the literal string id. An unknown id simply matches nothing.
func idFilter(id string) bson.D {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.D{{Key: "_id", Value: oid}}
	}
	return bson.D{{Key: "_id", Value: id}}
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func (d storedProject) toDomain() domain.Project {
	return domain.Project{
		ID:               rawIDString(d.ID),
		Title:            d.Title,
		ShortDescription: d.ShortDescription,
		LongDescription:  d.LongDescription,
		LiveLink:         d.LiveLink,
		GithubLink:       d.GithubLink,
		ImageURLs:        d.ImageURLs,
		PdfURL:           d.PdfURL,
		Description:      d.Description,
		ImageURL:         d.ImageURL,
	}
}

func rawIDString(v bson.RawValue) string {
	switch v.Type {
	case bsontype.ObjectID:
		return v.ObjectID().Hex()
	case bsontype.String:
		return v.StringValue()
	case 0:
		return ""
	default:
		return v.String()
	}
}
