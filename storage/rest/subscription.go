package restrepos

import (
	"github.com/shulehub/shule/core/subscription"
)

type subscriptionRepository struct {
	c *Client
}

var _ subscription.Repository = (*subscriptionRepository)(nil) // interface compliance check

func NewSubscriptionRepository(c *Client) *subscriptionRepository {
	return &subscriptionRepository{c: c}
}

func (repo subscriptionRepository) ListSubscriptions(filter subscription.QueryFilter) ([]subscription.Subscription, int, error) {
	var subs []subscription.Subscription
	count, err := repo.c.list("/subscriptions", filter.Values(), &subs)
	return subs, count, err
}

func (repo subscriptionRepository) ListExpiredSubscriptions(filter subscription.QueryFilter) ([]subscription.Subscription, int, error) {
	var subs []subscription.Subscription
	count, err := repo.c.list("/subscriptions/expired", filter.Values(), &subs)
	return subs, count, err
}

func (repo subscriptionRepository) GetSubscription(id string) (subscription.Subscription, error) {
	var sub subscription.Subscription
	err := repo.c.get("/subscriptions/"+id, nil, &sub)
	return sub, err
}

func (repo subscriptionRepository) RenewSubscription(id string, r subscription.Renew) (subscription.Subscription, error) {
	var sub subscription.Subscription
	err := repo.c.post("/subscriptions/"+id+"/renew", r, &sub)
	return sub, err
}
