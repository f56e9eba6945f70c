package restrepos

import (
	"github.com/shulehub/shule/core/user"
)

type userRepository struct {
	c *Client
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(c *Client) *userRepository {
	return &userRepository{c: c}
}

func (repo userRepository) Login(email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}
	var res struct {
		Token string `json:"token"`
	}
	if err := repo.c.post("/auth/login", body, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

func (repo userRepository) ListUsers(filter user.QueryFilter) ([]user.User, int, error) {
	var users []user.User
	count, err := repo.c.list("/users", filter.Values(), &users)
	return users, count, err
}

func (repo userRepository) GetUser(id string) (user.User, error) {
	var usr user.User
	err := repo.c.get("/users/"+id, nil, &usr)
	return usr, err
}

func (repo userRepository) CreateUser(nu user.NewUser) (user.User, error) {
	var usr user.User
	err := repo.c.post("/users", nu, &usr)
	return usr, err
}

func (repo userRepository) UpdateUser(id string, uu user.UpdateUser) (user.User, error) {
	var usr user.User
	err := repo.c.patch("/users/"+id, uu, &usr)
	return usr, err
}

func (repo userRepository) DeleteUser(id string) error {
	return repo.c.del("/users/" + id)
}
