package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/polkiloo/canteen/internal/domain/model"
)

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone"`
	PasswordHash string             `bson:"password_hash"`
	IsActive     bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func newUserDocument(u *model.User) userDocument {
	return userDocument{
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

func (d userDocument) model() *model.User {
	return &model.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		PasswordHash: d.PasswordHash,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
	}
}

type menuDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	ImageURL    string             `bson:"image_url"`
	IsAvailable bool               `bson:"is_available"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func newMenuDocument(m *model.MenuItem) menuDocument {
	return menuDocument{
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (d menuDocument) model() model.MenuItem {
	return model.MenuItem{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		IsAvailable: d.IsAvailable,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type orderDocument struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty"`
	UserID          string              `bson:"user_id"`
	Items           []model.OrderItem   `bson:"items"`
	TotalAmount     float64             `bson:"total_amount"`
	PerPersonAmount float64             `bson:"per_person_amount"`
	SplitCount      int                 `bson:"split_count"`
	TableNumber     *string             `bson:"table_number"`
	PaymentStatus   model.PaymentStatus `bson:"payment_status"`
	OrderStatus     model.OrderStatus   `bson:"order_status"`
	CreatedAt       time.Time           `bson:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at"`
}

func newOrderDocument(o *model.Order) orderDocument {
	return orderDocument{
		UserID:          o.UserID,
		Items:           o.Items,
		TotalAmount:     o.TotalAmount,
		PerPersonAmount: o.PerPersonAmount,
		SplitCount:      o.SplitCount,
		TableNumber:     o.TableNumber,
		PaymentStatus:   o.PaymentStatus,
		OrderStatus:     o.OrderStatus,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (d orderDocument) model() model.Order {
	return model.Order{
		ID:              d.ID.Hex(),
		UserID:          d.UserID,
		Items:           d.Items,
		TotalAmount:     d.TotalAmount,
		PerPersonAmount: d.PerPersonAmount,
		SplitCount:      d.SplitCount,
		TableNumber:     d.TableNumber,
		PaymentStatus:   d.PaymentStatus,
		OrderStatus:     d.OrderStatus,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
