// file: internals/features/community/groups/model/group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	GroupID          uuid.UUID `json:"group_id" gorm:"column:group_id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupName        string    `json:"group_name" gorm:"column:group_name;type:varchar(120);not null"`
	GroupSlug        string    `json:"group_slug" gorm:"column:group_slug;type:varchar(140);not null;unique"`
	GroupDescription *string   `json:"group_description" gorm:"column:group_description;type:text"`
	GroupIsActive    bool      `json:"group_is_active" gorm:"column:group_is_active;not null;default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Group) TableName() string {
	return "groups"
}

// GroupMember adalah grant keanggotaan grup. Bisa dibuat oleh propagation
// engine (granted_via terisi) maupun aksi user sendiri (granted_via NULL).
// Revocation saat langganan kadaluarsa hanya menghapus row yang
// granted_via-nya menunjuk langganan tersebut.
type GroupMember struct {
	GroupMemberID   uuid.UUID `json:"group_member_id" gorm:"column:group_member_id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupID         uuid.UUID `json:"group_id" gorm:"column:group_id;type:uuid;not null;uniqueIndex:uq_group_member"`
	UserID          uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_group_member"`
	GroupMemberRole string    `json:"group_member_role" gorm:"column:group_member_role;type:varchar(20);not null;default:'MEMBER'"`

	GrantedViaUserMembershipID *uuid.UUID `json:"granted_via_user_membership_id" gorm:"column:granted_via_user_membership_id;type:uuid"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (GroupMember) TableName() string {
	return "group_members"
}
