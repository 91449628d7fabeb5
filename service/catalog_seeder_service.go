package services

import (
	"fmt"
	"log"

	"fitflix-server/dao/redis"
	"fitflix-server/util"
)

// CatalogSeederService loads the static venue catalog into storage.
type CatalogSeederService struct {
	venueDao *redis.RedisVenueDAO
}

func NewCatalogSeederService(venueDao *redis.RedisVenueDAO) *CatalogSeederService {
	return &CatalogSeederService{venueDao: venueDao}
}

// SeedCatalog reads the catalog at path, skips invalid and duplicate entries,
// upserts the rest, records their order and drops venues left over from an
// earlier catalog. It returns the number of venues stored.
func (cs *CatalogSeederService) SeedCatalog(path string) (int, error) {
	venues, err := util.ReadVenuesCatalogFromJSON(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read venues catalog: %w", err)
	}
	log.Printf("[CatalogSeederService] Seeding %d catalog entries from %s", len(venues), path)

	seenIDs := make(map[int]struct{})
	order := make([]int, 0, len(venues))
	for _, v := range venues {
		if _, dup := seenIDs[v.ID]; dup {
			log.Printf("[CatalogSeederService] Skipping duplicate venue ID=%d", v.ID)
			continue
		}
		if err := v.Validate(); err != nil {
			log.Printf("[CatalogSeederService] Skipping invalid venue ID=%d: %v", v.ID, err)
			continue
		}
		log.Printf("[CatalogSeederService] Upserting %s", v.ToString())
		if err := cs.venueDao.UpsertVenue(v); err != nil {
			return len(order), fmt.Errorf("failed to upsert venue %d: %w", v.ID, err)
		}
		seenIDs[v.ID] = struct{}{}
		order = append(order, v.ID)
	}

	if err := cs.venueDao.SetCatalogOrder(order); err != nil {
		return len(order), err
	}
	if err := cs.pruneStale(seenIDs); err != nil {
		return len(order), err
	}
	log.Printf("[CatalogSeederService] Catalog seeded with %d venues", len(order))
	return len(order), nil
}

// pruneStale deletes stored venues that are no longer in the catalog.
func (cs *CatalogSeederService) pruneStale(keep map[int]struct{}) error {
	stored, err := cs.venueDao.ListAllVenueIDs()
	if err != nil {
		return err
	}
	for _, id := range stored {
		if _, ok := keep[id]; ok {
			continue
		}
		log.Printf("[CatalogSeederService] Removing venue ID=%d no longer in catalog", id)
		if err := cs.venueDao.DeleteVenue(id); err != nil {
			return err
		}
	}
	return nil
}
