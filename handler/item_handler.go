package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-auth-api/common"
	"go-auth-api/model"
	"go-auth-api/repository"
	"go-auth-api/service"
)

type ItemHandler struct {
	service *service.ItemService
}

func NewItemHandler(service *service.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// ListItems godoc
// @Summary      List all items
// @Description  Retrieve a list of all items in the system. Returns an empty list if no items exist.
// @Tags         items
// @Produce      json
// @Success      200  {array}  model.Item
// @Router       /api/v1/items [get]
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.ListItems()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve items", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
	return nil
}

// GetItem godoc
// @Summary      Get an item by ID
// @Description  Retrieve a specific item by its unique identifier.
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  model.Item
// @Failure      404  {object}  common.AppError
// @Router       /api/v1/items/{id} [get]
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := itemIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return common.NewAppError(http.StatusNotFound, "Item not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve item", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
	return nil
}

// CreateItem godoc
// @Summary      Create a new item
// @Description  Create a new item with the provided data. The item is assigned a unique ID.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body model.ItemRequest true "Item payload"
// @Success      201  {object}  model.Item
// @Router       /api/v1/items [post]
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ItemRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	item, err := h.service.CreateItem(&req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create item", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
	return nil
}

// UpdateItem godoc
// @Summary      Update an item
// @Description  Replace all fields of an existing item.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id      path  int                true  "Item ID"
// @Param        request body  model.ItemRequest  true  "Item payload"
// @Success      200  {object}  model.Item
// @Failure      404  {object}  common.AppError
// @Router       /api/v1/items/{id} [put]
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := itemIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	var req model.ItemRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	item, err := h.service.UpdateItem(id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return common.NewAppError(http.StatusNotFound, "Item not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update item", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
	return nil
}

// DeleteItem godoc
// @Summary      Delete an item
// @Description  Remove an item from the system by its unique identifier.
// @Tags         items
// @Param        id   path  int  true  "Item ID"
// @Success      204  "No Content"
// @Failure      404  {object}  common.AppError
// @Router       /api/v1/items/{id} [delete]
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := itemIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	if err := h.service.DeleteItem(id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return common.NewAppError(http.StatusNotFound, "Item not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete item", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func itemIDFromPath(r *http.Request) (int, *common.AppError) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid item ID", nil)
	}
	return id, nil
}
