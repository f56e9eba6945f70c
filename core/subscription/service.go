package subscription

import (
	"errors"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
)

var ErrNotFound = errors.New("subscription not found")

type (
	Repository interface {
		ListSubscriptions(filter QueryFilter) ([]Subscription, int, error)
		ListExpiredSubscriptions(filter QueryFilter) ([]Subscription, int, error)
		GetSubscription(id string) (Subscription, error)
		RenewSubscription(id string, r Renew) (Subscription, error)
	}

	Service struct {
		repo  Repository
		store *cache.Store
	}

	page struct {
		subs  []Subscription
		count int
	}
)

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (svc *Service) list(res string, filter QueryFilter, fetch func() ([]Subscription, int, error)) ([]Subscription, int, error) {
	key := cache.NewKey(res, filter.Values())
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		subs, count, err := fetch()
		if err != nil {
			return nil, err
		}
		return page{subs: subs, count: count}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	p := v.(page)
	return p.subs, p.count, nil
}

func (svc *Service) List(filter QueryFilter) ([]Subscription, int, error) {
	return svc.list(cache.ResSubscriptions, filter, func() ([]Subscription, int, error) {
		return svc.repo.ListSubscriptions(filter)
	})
}

// ListExpired backs the super-admin's expiring-subscriptions dashboard.
func (svc *Service) ListExpired(filter QueryFilter) ([]Subscription, int, error) {
	return svc.list(cache.ResExpiredSubscriptions, filter, func() ([]Subscription, int, error) {
		return svc.repo.ListExpiredSubscriptions(filter)
	})
}

func (svc *Service) Get(id string) (Subscription, error) {
	key := cache.DetailKey(cache.ResSubscriptions, id)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetSubscription(id)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, err
	}
	return v.(Subscription), nil
}

// Renew extends the subscription's end date; the derived status flips
// back to ACTIVE once the new end date clears the present.
func (svc *Service) Renew(id string, r Renew) (Subscription, error) {
	if err := r.Validate(); err != nil {
		return Subscription{}, err
	}
	sub, err := svc.repo.RenewSubscription(id, r)
	if err != nil {
		if core.IsNotFound(err) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, err
	}
	svc.store.InvalidateFor(cache.MutRenewSubscription)
	return sub, nil
}

// Watch polls the subscription list on the configured interval so the
// super-admin dashboard stays approximately fresh across users.
func (svc *Service) Watch(conf *core.Config, filter QueryFilter) (stop func()) {
	key := cache.NewKey(cache.ResSubscriptions, filter.Values())
	return svc.store.Poll(key, conf.SubscriptionPollInterval, func() (interface{}, error) {
		subs, count, err := svc.repo.ListSubscriptions(filter)
		if err != nil {
			return nil, err
		}
		return page{subs: subs, count: count}, nil
	})
}
