package user

import "go.mongodb.org/mongo-driver/bson/primitive"

type userDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	UserName       string             `bson:"userName"`
	FirstName      string             `bson:"firstName"`
	LastName       string             `bson:"lastName"`
	Email          string             `bson:"email"`
	Phone          string             `bson:"phone"`
	DocumentType   string             `bson:"documentType"`
	DocumentNumber string             `bson:"documentNumber"`
	Password       string             `bson:"password"`
	Role           string             `bson:"role"`
	Status         string             `bson:"status"`
	InstitutionID  string             `bson:"institutionId"`
	Permissions    []string           `bson:"permissions"`
}
