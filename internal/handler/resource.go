package handler

import (
	"context"
	"net/http"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/validation"

	"github.com/go-chi/chi/v5"
)

// Service is the CRUD surface one entity exposes to its handlers.
type Service[T, In any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, in In) (T, error)
	Update(ctx context.Context, id int64, in In) (T, error)
	Delete(ctx context.Context, id int64) error
}

type messages struct {
	invalidID string

	created string
	updated string
	deleted string

	listFailed   string
	getFailed    string
	createFailed string
	updateFailed string
	deleteFailed string
}

var userMessages = messages{
	invalidID:    errs.MsgInvalidUserID,
	created:      errs.MsgUserCreated,
	updated:      errs.MsgUserUpdated,
	deleted:      errs.MsgUserDeleted,
	listFailed:   errs.MsgListUsersFailed,
	getFailed:    errs.MsgGetUserFailed,
	createFailed: errs.MsgCreateUserFailed,
	updateFailed: errs.MsgUpdateUserFailed,
	deleteFailed: errs.MsgDeleteUserFailed,
}

var productMessages = messages{
	invalidID:    errs.MsgInvalidProductID,
	created:      errs.MsgProductCreated,
	updated:      errs.MsgProductUpdated,
	deleted:      errs.MsgProductDeleted,
	listFailed:   errs.MsgListProductsFailed,
	getFailed:    errs.MsgGetProductFailed,
	createFailed: errs.MsgCreateProductFailed,
	updateFailed: errs.MsgUpdateProductFailed,
	deleteFailed: errs.MsgDeleteProductFailed,
}

var saleMessages = messages{
	invalidID:    errs.MsgInvalidSaleID,
	created:      errs.MsgSaleCreated,
	updated:      errs.MsgSaleUpdated,
	deleted:      errs.MsgSaleDeleted,
	listFailed:   errs.MsgListSalesFailed,
	getFailed:    errs.MsgGetSaleFailed,
	createFailed: errs.MsgCreateSaleFailed,
	updateFailed: errs.MsgUpdateSaleFailed,
	deleteFailed: errs.MsgDeleteSaleFailed,
}

// resource serves list, get, create, update and delete for one entity.
type resource[T, In any] struct {
	svc            Service[T, In]
	validateCreate func(validation.Payload) (In, error)
	validateUpdate func(validation.Payload) (In, error)
	msg            messages
}

func (h *resource[T, In]) routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *resource[T, In]) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		fail(w, r, err, h.msg.listFailed)
		return
	}
	okList(w, r, items)
}

func (h *resource[T, In]) get(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"), h.msg.invalidID)
	if err != nil {
		fail(w, r, err, h.msg.getFailed)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err, h.msg.getFailed)
		return
	}
	ok(w, r, http.StatusOK, item, "")
}

func (h *resource[T, In]) create(w http.ResponseWriter, r *http.Request) {
	in, err := h.decode(r, h.validateCreate)
	if err != nil {
		fail(w, r, err, h.msg.createFailed)
		return
	}

	item, err := h.svc.Create(r.Context(), in)
	if err != nil {
		fail(w, r, err, h.msg.createFailed)
		return
	}
	ok(w, r, http.StatusCreated, item, h.msg.created)
}

func (h *resource[T, In]) update(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"), h.msg.invalidID)
	if err != nil {
		fail(w, r, err, h.msg.updateFailed)
		return
	}

	in, err := h.decode(r, h.validateUpdate)
	if err != nil {
		fail(w, r, err, h.msg.updateFailed)
		return
	}

	item, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		fail(w, r, err, h.msg.updateFailed)
		return
	}
	ok(w, r, http.StatusOK, item, h.msg.updated)
}

func (h *resource[T, In]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"), h.msg.invalidID)
	if err != nil {
		fail(w, r, err, h.msg.deleteFailed)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		fail(w, r, err, h.msg.deleteFailed)
		return
	}
	ok(w, r, http.StatusOK, nil, h.msg.deleted)
}

func (h *resource[T, In]) decode(r *http.Request, validate func(validation.Payload) (In, error)) (In, error) {
	p, err := validation.DecodePayload(r.Body)
	if err != nil {
		var zero In
		return zero, err
	}
	return validate(p)
}
