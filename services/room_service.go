package services

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"hotel-premium-backend/models"
	"hotel-premium-backend/utils"
)

// Nightly rates per room variant, in COP.
const (
	singleRate    = 200000
	executiveRate = 350000
	suiteRate     = 500000
)

// RoomService owns the room catalog, per-room availability and the embedded
// minibar stock. One write lock guards the whole aggregate; the id sequence
// advances under the same lock.
type RoomService struct {
	mu     sync.RWMutex
	rooms  map[uint]*models.Room
	order  []uint
	nextID uint
	log    *zap.Logger
}

func NewRoomService(log *zap.Logger) *RoomService {
	return &RoomService{
		rooms: make(map[uint]*models.Room),
		log:   log,
	}
}

// InitializeCatalog populates the fixed room catalog: 10 single rooms per
// floor on floors 2-4, 10 executive rooms on floor 5 and 5 suites on floor 6.
// Executive and suite rooms are stocked with the standard minibar set; suites
// additionally get the premium items. Idempotent only in the sense that the
// process calls it once at startup.
func (s *RoomService) InitializeCatalog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for floor := 2; floor <= 4; floor++ {
		for i := 1; i <= 10; i++ {
			bed, beds := models.BedSingle, 2
			if i%2 == 0 {
				bed, beds = models.BedDouble, 1
			}
			s.add(&models.Room{
				Number:        fmt.Sprintf("%d%02d", floor, i),
				Type:          models.RoomTypeSingle,
				PricePerNight: singleRate,
				BedType:       bed,
				BedCount:      beds,
				Status:        models.RoomAvailable,
				Description:   fmt.Sprintf("Single room on floor %d", floor),
			})
		}
	}

	for i := 1; i <= 10; i++ {
		bed, beds := models.BedSemiDouble, 2
		if i%2 == 0 {
			bed, beds = models.BedQueen, 1
		}
		s.add(&models.Room{
			Number:        fmt.Sprintf("5%02d", i),
			Type:          models.RoomTypeExecutive,
			PricePerNight: executiveRate,
			BedType:       bed,
			BedCount:      beds,
			Status:        models.RoomAvailable,
			Description:   "Executive room with minibar",
			Minibar:       standardMinibar(),
		})
	}

	for i := 1; i <= 5; i++ {
		bed, beds := models.BedQueen, 2
		if i%2 == 0 {
			bed, beds = models.BedKing, 1
		}
		s.add(&models.Room{
			Number:        fmt.Sprintf("6%02d", i),
			Type:          models.RoomTypeSuite,
			PricePerNight: suiteRate,
			BedType:       bed,
			BedCount:      beds,
			Status:        models.RoomAvailable,
			Description:   "Luxury suite with full minibar",
			Minibar:       append(standardMinibar(), premiumMinibar()...),
		})
	}

	s.log.Info("room catalog initialized", zap.Int("rooms", len(s.rooms)))
}

func standardMinibar() []models.MinibarProduct {
	return []models.MinibarProduct{
		{ID: 1, Name: "Mineral Water", Category: models.CategoryWater, UnitPrice: 3000, Stock: 4},
		{ID: 2, Name: "Sparkling Water", Category: models.CategoryWater, UnitPrice: 3500, Stock: 2},
		{ID: 3, Name: "Coca Cola", Category: models.CategorySoda, UnitPrice: 4000, Stock: 3},
		{ID: 4, Name: "Sprite", Category: models.CategorySoda, UnitPrice: 4000, Stock: 3},
		{ID: 5, Name: "Orange Juice", Category: models.CategoryJuice, UnitPrice: 5000, Stock: 2},
		{ID: 6, Name: "Apple Juice", Category: models.CategoryJuice, UnitPrice: 5000, Stock: 2},
		{ID: 7, Name: "Potato Chips", Category: models.CategorySnack, UnitPrice: 6000, Stock: 3},
		{ID: 8, Name: "Peanuts", Category: models.CategorySnack, UnitPrice: 5000, Stock: 3},
		{ID: 9, Name: "Chocolate", Category: models.CategorySnack, UnitPrice: 7000, Stock: 2},
	}
}

func premiumMinibar() []models.MinibarProduct {
	return []models.MinibarProduct{
		{ID: 10, Name: "Red Wine", Category: models.CategoryWine, UnitPrice: 45000, Stock: 2},
		{ID: 11, Name: "White Wine", Category: models.CategoryWine, UnitPrice: 45000, Stock: 2},
		{ID: 12, Name: "Whisky", Category: models.CategoryLiquor, UnitPrice: 80000, Stock: 1},
		{ID: 13, Name: "Vodka", Category: models.CategoryLiquor, UnitPrice: 70000, Stock: 1},
		{ID: 14, Name: "Champagne", Category: models.CategorySparkling, UnitPrice: 120000, Stock: 1},
	}
}

// add assigns the next id and stores the room. Caller must hold mu.
func (s *RoomService) add(room *models.Room) {
	s.nextID++
	room.ID = s.nextID
	s.rooms[room.ID] = room
	s.order = append(s.order, room.ID)
}

func (s *RoomService) GetAll() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rooms[id].Clone())
	}
	return out
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return models.Room{}, utils.NotFoundf("room with id %d not found", id)
	}
	return room.Clone(), nil
}

func (s *RoomService) GetByNumber(number string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if s.rooms[id].Number == number {
			return s.rooms[id].Clone(), nil
		}
	}
	return models.Room{}, utils.NotFoundf("room with number %s not found", number)
}

func (s *RoomService) GetAvailable() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Room
	for _, id := range s.order {
		if s.rooms[id].Status == models.RoomAvailable {
			out = append(out, s.rooms[id].Clone())
		}
	}
	return out
}

func (s *RoomService) GetByType(t models.RoomType) []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Room
	for _, id := range s.order {
		if s.rooms[id].Type == t {
			out = append(out, s.rooms[id].Clone())
		}
	}
	return out
}

// Reserve flips one room to reserved, failing on anything not available.
func (s *RoomService) Reserve(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserveAllLocked([]uint{id})
}

// ReserveAll reserves every requested room or none of them. Rooms are
// validated before any state flips, so a conflict on the last room leaves
// the earlier ones untouched.
func (s *RoomService) ReserveAll(ids []uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserveAllLocked(ids)
}

// reserveAllLocked validates then flips. Caller must hold mu. Ids are
// processed in ascending order to keep the locking story deterministic.
func (s *RoomService) reserveAllLocked(ids []uint) error {
	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for _, id := range sorted {
		room, ok := s.rooms[id]
		if !ok {
			return utils.NotFoundf("room with id %d not found", id)
		}
		if room.Status != models.RoomAvailable {
			return utils.Conflictf("room %s is not available", room.Number)
		}
	}
	for _, id := range sorted {
		s.rooms[id].Status = models.RoomReserved
	}
	return nil
}

// Release sets the room available unconditionally.
func (s *RoomService) Release(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return utils.NotFoundf("room with id %d not found", id)
	}
	room.Status = models.RoomAvailable
	return nil
}

// releaseAllLocked frees rooms without availability checks. Caller must hold
// mu; unknown ids are skipped (rooms are never destroyed, so this only
// matters for malformed input).
func (s *RoomService) releaseAllLocked(ids []uint) {
	for _, id := range ids {
		if room, ok := s.rooms[id]; ok {
			room.Status = models.RoomAvailable
		}
	}
}

// Update replaces the stored record for an existing room.
func (s *RoomService) Update(room models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[room.ID]; !ok {
		return utils.NotFoundf("room with id %d not found", room.ID)
	}
	clone := room.Clone()
	s.rooms[room.ID] = &clone
	return nil
}

// withRoom runs fn against the live room record while holding the write
// lock. The minibar ledger uses it for all-or-nothing stock mutations.
func (s *RoomService) withRoom(id uint, fn func(*models.Room) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return utils.NotFoundf("room with id %d not found", id)
	}
	return fn(room)
}
