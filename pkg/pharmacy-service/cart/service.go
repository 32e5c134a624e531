package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/inventory"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const entity = "Cart"

// Catalog prices cart lines; inventory.Service implements it.
type Catalog interface {
	GetMany(ctx context.Context, ids []primitive.ObjectID) ([]inventory.Item, error)
}

type Service struct {
	repo    Repository
	catalog Catalog
	now     func() time.Time
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog, now: time.Now}
}

func parseOwner(email string) (string, error) {
	o := owner{Email: strings.ToLower(strings.TrimSpace(email))}
	if err := helper.ValidateStruct(entity, o); err != nil {
		return "", err
	}
	return o.Email, nil
}

func (s *Service) load(ctx context.Context, email string) (Cart, error) {
	c, err := s.repo.Get(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return Cart{UserEmail: email, Items: []CartItem{}}, nil
	}
	if err != nil {
		return Cart{}, database.Normalize(err, entity, "FETCH_ERROR")
	}
	return c, nil
}

func (s *Service) lookup(ctx context.Context, items []CartItem) (map[primitive.ObjectID]inventory.Item, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.InventoryItem)
	}
	found, err := s.catalog.GetMany(ctx, ids)
	if err != nil {
		return nil, database.Normalize(err, "Inventory item", "FETCH_ERROR")
	}
	byID := make(map[primitive.ObjectID]inventory.Item, len(found))
	for _, item := range found {
		byID[item.ID] = item
	}
	return byID, nil
}

// price drops lines whose inventory record is gone and recomputes the total from current prices.
func price(c Cart, byID map[primitive.ObjectID]inventory.Item) (Cart, View) {
	kept := []CartItem{}
	view := View{UserEmail: c.UserEmail, Items: []Line{}, UpdatedAt: c.UpdatedAt}
	var total float64
	for _, it := range c.Items {
		item, ok := byID[it.InventoryItem]
		if !ok {
			continue
		}
		kept = append(kept, it)
		lineTotal := helper.Round2(item.Price * float64(it.Quantity))
		total += lineTotal
		view.Items = append(view.Items, Line{
			InventoryItem: item.ID,
			Name:          item.Name,
			Code:          item.Code,
			Price:         item.Price,
			ImageURL:      item.ImageURL,
			Quantity:      it.Quantity,
			LineTotal:     lineTotal,
		})
	}
	c.Items = kept
	c.Total = helper.Round2(total)
	view.Total = c.Total
	return c, view
}

func (s *Service) save(ctx context.Context, c Cart) (View, error) {
	byID, err := s.lookup(ctx, c.Items)
	if err != nil {
		return View{}, err
	}
	c, _ = price(c, byID)
	c.UpdatedAt = s.now().UTC()
	saved, err := s.repo.Save(ctx, c)
	if err != nil {
		return View{}, database.Normalize(err, entity, "UPDATE_ERROR")
	}
	_, view := price(saved, byID)
	return view, nil
}

// Get returns the priced cart; an unknown email yields an empty cart.
func (s *Service) Get(ctx context.Context, email string) (View, error) {
	email, err := parseOwner(email)
	if err != nil {
		return View{}, err
	}
	c, err := s.load(ctx, email)
	if err != nil {
		return View{}, err
	}
	byID, err := s.lookup(ctx, c.Items)
	if err != nil {
		return View{}, err
	}
	_, view := price(c, byID)
	return view, nil
}

func checkStock(item inventory.Item, quantity int) error {
	if quantity > item.Quantity {
		return helper.BadRequest(fmt.Sprintf("Insufficient stock for %s: %d available", item.Code, item.Quantity))
	}
	return nil
}

func (s *Service) stocked(ctx context.Context, id primitive.ObjectID, quantity int) error {
	byID, err := s.lookup(ctx, []CartItem{{InventoryItem: id}})
	if err != nil {
		return err
	}
	item, ok := byID[id]
	if !ok {
		return helper.EntityNotFound("Inventory item not found")
	}
	return checkStock(item, quantity)
}

// AddItem puts an inventory item in the cart, increasing the quantity when it is already there.
func (s *Service) AddItem(ctx context.Context, email string, in AddItemInput) (View, error) {
	email, err := parseOwner(email)
	if err != nil {
		return View{}, err
	}
	if err := helper.ValidateStruct("Cart item", in); err != nil {
		return View{}, err
	}
	id, _ := primitive.ObjectIDFromHex(in.InventoryItem)
	c, err := s.load(ctx, email)
	if err != nil {
		return View{}, err
	}
	quantity := in.Quantity
	idx := -1
	for i, it := range c.Items {
		if it.InventoryItem == id {
			idx = i
			quantity += it.Quantity
		}
	}
	if err := s.stocked(ctx, id, quantity); err != nil {
		return View{}, err
	}
	if idx >= 0 {
		c.Items[idx].Quantity = quantity
	} else {
		c.Items = append(c.Items, CartItem{InventoryItem: id, Quantity: quantity})
	}
	return s.save(ctx, c)
}

func (s *Service) locate(ctx context.Context, email string, itemID string) (Cart, int, error) {
	email, err := parseOwner(email)
	if err != nil {
		return Cart{}, 0, err
	}
	id, err := helper.ParseObjectID(itemID, "inventory")
	if err != nil {
		return Cart{}, 0, err
	}
	c, err := s.load(ctx, email)
	if err != nil {
		return Cart{}, 0, err
	}
	for i, it := range c.Items {
		if it.InventoryItem == id {
			return c, i, nil
		}
	}
	return Cart{}, 0, helper.EntityNotFound("Cart item not found")
}

func (s *Service) UpdateItem(ctx context.Context, email string, itemID string, in QuantityInput) (View, error) {
	if err := helper.ValidateStruct("Cart item", in); err != nil {
		return View{}, err
	}
	c, idx, err := s.locate(ctx, email, itemID)
	if err != nil {
		return View{}, err
	}
	if err := s.stocked(ctx, c.Items[idx].InventoryItem, in.Quantity); err != nil {
		return View{}, err
	}
	c.Items[idx].Quantity = in.Quantity
	return s.save(ctx, c)
}

func (s *Service) RemoveItem(ctx context.Context, email string, itemID string) (View, error) {
	c, idx, err := s.locate(ctx, email, itemID)
	if err != nil {
		return View{}, err
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	return s.save(ctx, c)
}

// Clear removes the cart; clearing a missing cart is not an error.
func (s *Service) Clear(ctx context.Context, email string) error {
	email, err := parseOwner(email)
	if err != nil {
		return err
	}
	err = s.repo.Delete(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	return database.Normalize(err, entity, "DELETE_ERROR")
}
