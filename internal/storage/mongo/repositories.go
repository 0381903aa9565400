package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
)

// --- UserRepository implementation ---

type userRepository struct {
	collection *mongo.Collection
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	doc := newUserDocument(user)
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, translate(err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.model(), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var doc userDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.model(), nil
}

// --- MenuRepository implementation ---

type menuRepository struct {
	collection *mongo.Collection
}

func (r *menuRepository) ListAvailable(ctx context.Context) ([]model.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"is_available": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []menuDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]model.MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.model())
	}
	return items, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc menuDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	item := doc.model()
	return &item, nil
}

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	doc := newMenuDocument(item)
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, translate(err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	created := doc.model()
	return &created, nil
}

func (r *menuRepository) CreateMany(ctx context.Context, items []model.MenuItem) error {
	docs := make([]interface{}, 0, len(items))
	for i := range items {
		docs = append(docs, newMenuDocument(&items[i]))
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return translate(err)
}

func (r *menuRepository) Update(ctx context.Context, id string, patch model.MenuItemPatch, updatedAt time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	set := bson.M{"updated_at": updatedAt}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	if patch.IsAvailable != nil {
		set["is_available"] = *patch.IsAvailable
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected category value %T", v)
		}
		categories = append(categories, s)
	}
	return categories, nil
}

func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// --- OrderRepository implementation ---

type orderRepository struct {
	collection *mongo.Collection
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	doc := newOrderDocument(order)
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, translate(err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	created := doc.model()
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc orderDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	order := doc.model()
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *orderRepository) find(ctx context.Context, filter bson.M) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.model())
	}
	return orders, nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, from []model.PaymentStatus, updatedAt time.Time) error {
	var guard []string
	for _, s := range from {
		guard = append(guard, string(s))
	}
	return r.updateStatus(ctx, "payment_status", id, string(status), guard, updatedAt)
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, from []model.OrderStatus, updatedAt time.Time) error {
	var guard []string
	for _, s := range from {
		guard = append(guard, string(s))
	}
	return r.updateStatus(ctx, "order_status", id, string(status), guard, updatedAt)
}

func (r *orderRepository) updateStatus(ctx context.Context, field, id, status string, from []string, updatedAt time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": oid}
	if len(from) > 0 {
		filter[field] = bson.M{"$in": from}
	}
	update := bson.M{"$set": bson.M{field: status, "updated_at": updatedAt}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
