package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

type compareView struct {
	IDs      []int64       `json:"ids"`
	Max      int           `json:"max"`
	Full     bool          `json:"full"`
	Products []productView `json:"products,omitempty"`
}

func newCompareView(ids []int64) compareView {
	return compareView{IDs: ids, Max: entities.MaxCompareItems, Full: len(ids) >= entities.MaxCompareItems}
}

func (h *Handler) getCompare(w http.ResponseWriter, r *http.Request) {
	session := compareSessionFrom(r.Context())
	loc := localeFrom(r.Context())
	products, err := h.compare.Products(r.Context(), session)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	v := newCompareView(h.compare.IDs(session))
	v.Products = make([]productView, 0, len(products))
	for _, p := range products {
		v.Products = append(v.Products, newProductView(p, loc))
	}
	writeJSON(w, http.StatusOK, v)
}

type addCompareRequest struct {
	ProductID int64 `json:"productId"`
}

func (h *Handler) addCompare(w http.ResponseWriter, r *http.Request) {
	var req addCompareRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	ids, err := h.compare.Add(r.Context(), compareSessionFrom(r.Context()), req.ProductID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCompareView(ids))
}

func (h *Handler) removeCompare(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		h.writeError(w, r, domain.ErrProductNotFound)
		return
	}
	ids := h.compare.Remove(compareSessionFrom(r.Context()), id)
	writeJSON(w, http.StatusOK, newCompareView(ids))
}

func (h *Handler) clearCompare(w http.ResponseWriter, r *http.Request) {
	h.compare.Clear(compareSessionFrom(r.Context()))
	writeJSON(w, http.StatusOK, newCompareView([]int64{}))
}
