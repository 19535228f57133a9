package server

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"foodshare/pkg/types"
)

const minCreateQuantity = 1

type listingsResponse struct {
	Filter   types.ListingFilter `json:"filter"`
	Count    int                 `json:"count"`
	Listings []*types.Listing    `json:"listings"`
}

type mutationResponse struct {
	types.MutationResult
	Found bool `json:"found"`
}

func (s *Service) handleListings(w http.ResponseWriter, r *http.Request) {
	var filter types.ListingFilter
	if err := decoder.Decode(&filter, r.URL.Query()); err != nil {
		s.badRequest(w, "invalid listing filter")
		return
	}

	listings, err := s.listings.FilteredListings(r.Context(), filter)
	if err != nil {
		s.writeError(w, err, "failed to fetch filtered listings")
		return
	}

	s.writeJSON(w, http.StatusOK, listingsResponse{
		Filter:   filter,
		Count:    len(listings),
		Listings: listings,
	})
}

func (s *Service) handleListingOptions(w http.ResponseWriter, r *http.Request) {
	options, err := s.listings.FilterOptions(r.Context())
	if err != nil {
		s.writeError(w, err, "failed to fetch listing filter options")
		return
	}

	s.writeJSON(w, http.StatusOK, options)
}

func (s *Service) handleManageListings(w http.ResponseWriter, r *http.Request) {
	limit := s.config.ListingsPageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			s.badRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = uint64(parsed)
	}

	listings, err := s.listings.Listings(r.Context(), limit)
	if err != nil {
		s.writeError(w, err, "failed to fetch listings")
		return
	}

	s.writeJSON(w, http.StatusOK, listingsResponse{
		Count:    len(listings),
		Listings: listings,
	})
}

func (s *Service) handleListingIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := s.listings.ListingIDs(r.Context())
	if err != nil {
		s.writeError(w, err, "failed to fetch listing ids")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ids": ids})
}

func (s *Service) handleListing(w http.ResponseWriter, r *http.Request) {
	foodID, err := foodIDParam(r)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}

	listing, err := s.listings.Listing(r.Context(), foodID)
	if err != nil {
		s.writeError(w, err, "failed to fetch listing")
		return
	}

	s.writeJSON(w, http.StatusOK, listing)
}

func (s *Service) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var listing = new(types.Listing)
	if err := decodeBody(r, listing); err != nil {
		s.badRequest(w, "invalid listing payload")
		return
	}

	// Zero quantity is only reachable through an update.
	if listing.Quantity < minCreateQuantity {
		s.writeError(w, fmt.Errorf("%w: quantity must be at least %d", types.ErrInvalidListing, minCreateQuantity), "rejected listing")
		return
	}

	if err := s.listings.CreateListing(r.Context(), listing); err != nil {
		s.writeError(w, err, "failed to create listing")
		return
	}

	s.writeJSON(w, http.StatusCreated, listing)
}

func (s *Service) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	foodID, err := foodIDParam(r)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}

	var update types.ListingUpdate
	if err := decodeBody(r, &update); err != nil {
		s.badRequest(w, "invalid listing update payload")
		return
	}

	result, err := s.listings.UpdateListing(r.Context(), foodID, update)
	if err != nil {
		s.writeError(w, err, "failed to update listing")
		return
	}

	s.writeJSON(w, http.StatusOK, mutationResponse{MutationResult: result, Found: result.Found()})
}

func (s *Service) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	foodID, err := foodIDParam(r)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}

	result, err := s.listings.DeleteListing(r.Context(), foodID)
	if err != nil {
		s.writeError(w, err, "failed to delete listing")
		return
	}

	s.writeJSON(w, http.StatusOK, mutationResponse{MutationResult: result, Found: result.Found()})
}

func foodIDParam(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid listing id %q", raw)
	}
	return id, nil
}

// decodeBody accepts either a JSON body or a url-encoded form.
func decodeBody(r *http.Request, dst any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return json.NewDecoder(r.Body).Decode(dst)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}
	return decoder.Decode(dst, r.PostForm)
}
