// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: kursus/v1/user.proto

package kursusv1

import (
	_ "buf.build/gen/go/bufbuild/protovalidate/protocolbuffers/go/buf/validate"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Role int32

const (
	Role_ROLE_UNSPECIFIED Role = 0
	Role_ROLE_STUDENT     Role = 1
	Role_ROLE_INSTRUCTOR  Role = 2
)

// Enum value maps for Role.
var (
	Role_name = map[int32]string{
		0: "ROLE_UNSPECIFIED",
		1: "ROLE_STUDENT",
		2: "ROLE_INSTRUCTOR",
	}
	Role_value = map[string]int32{
		"ROLE_UNSPECIFIED": 0,
		"ROLE_STUDENT":     1,
		"ROLE_INSTRUCTOR":  2,
	}
)

func (x Role) Enum() *Role {
	p := new(Role)
	*p = x
	return p
}

func (x Role) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Role) Descriptor() protoreflect.EnumDescriptor {
	return file_kursus_v1_user_proto_enumTypes[0].Descriptor()
}

func (Role) Type() protoreflect.EnumType {
	return &file_kursus_v1_user_proto_enumTypes[0]
}

func (x Role) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Role.Descriptor instead.
func (Role) EnumDescriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{0}
}

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Username      string                 `protobuf:"bytes,3,opt,name=username,proto3" json:"username,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Role          Role                   `protobuf:"varint,5,opt,name=role,proto3,enum=kursus.v1.Role" json:"role,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_kursus_v1_user_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{0}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetRole() Role {
	if x != nil {
		return x.Role
	}
	return Role_ROLE_UNSPECIFIED
}

func (x *User) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *User) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type Token struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccessToken   string                 `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Token) Reset() {
	*x = Token{}
	mi := &file_kursus_v1_user_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Token) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Token) ProtoMessage() {}

func (x *Token) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Token.ProtoReflect.Descriptor instead.
func (*Token) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{1}
}

func (x *Token) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *Token) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

type RegisterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Password      string                 `protobuf:"bytes,4,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterRequest) Reset() {
	*x = RegisterRequest{}
	mi := &file_kursus_v1_user_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterRequest) ProtoMessage() {}

func (x *RegisterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterRequest.ProtoReflect.Descriptor instead.
func (*RegisterRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{2}
}

func (x *RegisterRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RegisterRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *RegisterRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *RegisterRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type RegisterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterResponse) Reset() {
	*x = RegisterResponse{}
	mi := &file_kursus_v1_user_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterResponse) ProtoMessage() {}

func (x *RegisterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterResponse.ProtoReflect.Descriptor instead.
func (*RegisterResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{3}
}

func (x *RegisterResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type LoginRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_kursus_v1_user_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{4}
}

func (x *LoginRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type LoginResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	Token         *Token                 `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_kursus_v1_user_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginResponse.ProtoReflect.Descriptor instead.
func (*LoginResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{5}
}

func (x *LoginResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *LoginResponse) GetToken() *Token {
	if x != nil {
		return x.Token
	}
	return nil
}

type GetMeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMeRequest) Reset() {
	*x = GetMeRequest{}
	mi := &file_kursus_v1_user_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMeRequest) ProtoMessage() {}

func (x *GetMeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMeRequest.ProtoReflect.Descriptor instead.
func (*GetMeRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{6}
}

type GetMeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMeResponse) Reset() {
	*x = GetMeResponse{}
	mi := &file_kursus_v1_user_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMeResponse) ProtoMessage() {}

func (x *GetMeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMeResponse.ProtoReflect.Descriptor instead.
func (*GetMeResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{7}
}

func (x *GetMeResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type UpdateMeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          *string                `protobuf:"bytes,1,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Username      *string                `protobuf:"bytes,2,opt,name=username,proto3,oneof" json:"username,omitempty"`
	Email         *string                `protobuf:"bytes,3,opt,name=email,proto3,oneof" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateMeRequest) Reset() {
	*x = UpdateMeRequest{}
	mi := &file_kursus_v1_user_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMeRequest) ProtoMessage() {}

func (x *UpdateMeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMeRequest.ProtoReflect.Descriptor instead.
func (*UpdateMeRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateMeRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpdateMeRequest) GetUsername() string {
	if x != nil && x.Username != nil {
		return *x.Username
	}
	return ""
}

func (x *UpdateMeRequest) GetEmail() string {
	if x != nil && x.Email != nil {
		return *x.Email
	}
	return ""
}

type UpdateMeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateMeResponse) Reset() {
	*x = UpdateMeResponse{}
	mi := &file_kursus_v1_user_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMeResponse) ProtoMessage() {}

func (x *UpdateMeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMeResponse.ProtoReflect.Descriptor instead.
func (*UpdateMeResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateMeResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type ChangePasswordRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	CurrentPassword string                 `protobuf:"bytes,1,opt,name=current_password,json=currentPassword,proto3" json:"current_password,omitempty"`
	NewPassword     string                 `protobuf:"bytes,2,opt,name=new_password,json=newPassword,proto3" json:"new_password,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ChangePasswordRequest) Reset() {
	*x = ChangePasswordRequest{}
	mi := &file_kursus_v1_user_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChangePasswordRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChangePasswordRequest) ProtoMessage() {}

func (x *ChangePasswordRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChangePasswordRequest.ProtoReflect.Descriptor instead.
func (*ChangePasswordRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{10}
}

func (x *ChangePasswordRequest) GetCurrentPassword() string {
	if x != nil {
		return x.CurrentPassword
	}
	return ""
}

func (x *ChangePasswordRequest) GetNewPassword() string {
	if x != nil {
		return x.NewPassword
	}
	return ""
}

type ChangePasswordResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChangePasswordResponse) Reset() {
	*x = ChangePasswordResponse{}
	mi := &file_kursus_v1_user_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChangePasswordResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChangePasswordResponse) ProtoMessage() {}

func (x *ChangePasswordResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChangePasswordResponse.ProtoReflect.Descriptor instead.
func (*ChangePasswordResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{11}
}

type BecomeInstructorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BecomeInstructorRequest) Reset() {
	*x = BecomeInstructorRequest{}
	mi := &file_kursus_v1_user_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BecomeInstructorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BecomeInstructorRequest) ProtoMessage() {}

func (x *BecomeInstructorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BecomeInstructorRequest.ProtoReflect.Descriptor instead.
func (*BecomeInstructorRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{12}
}

type BecomeInstructorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	Token         *Token                 `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BecomeInstructorResponse) Reset() {
	*x = BecomeInstructorResponse{}
	mi := &file_kursus_v1_user_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BecomeInstructorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BecomeInstructorResponse) ProtoMessage() {}

func (x *BecomeInstructorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BecomeInstructorResponse.ProtoReflect.Descriptor instead.
func (*BecomeInstructorResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{13}
}

func (x *BecomeInstructorResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *BecomeInstructorResponse) GetToken() *Token {
	if x != nil {
		return x.Token
	}
	return nil
}

type DeleteMeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMeRequest) Reset() {
	*x = DeleteMeRequest{}
	mi := &file_kursus_v1_user_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMeRequest) ProtoMessage() {}

func (x *DeleteMeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMeRequest.ProtoReflect.Descriptor instead.
func (*DeleteMeRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{14}
}

type DeleteMeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMeResponse) Reset() {
	*x = DeleteMeResponse{}
	mi := &file_kursus_v1_user_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMeResponse) ProtoMessage() {}

func (x *DeleteMeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_user_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMeResponse.ProtoReflect.Descriptor instead.
func (*DeleteMeResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_user_proto_rawDescGZIP(), []int{15}
}

var File_kursus_v1_user_proto protoreflect.FileDescriptor

const file_kursus_v1_user_proto_rawDesc = "" +
	"\n" +
	"\x14kursus/v1/user.proto\x12\tkursus.v1\x1a\x1bbuf/validate/validate.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\xf7\x01\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\busername\x18\x03 \x01(\tR\busername\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12#\n" +
	"\x04role\x18\x05 \x01(\x0e2\x0f.kursus.v1.RoleR\x04role\x129\n" +
	"\n" +
	"created_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"e\n" +
	"\x05Token\x12!\n" +
	"\faccess_token\x18\x01 \x01(\tR\vaccessToken\x129\n" +
	"\n" +
	"expires_at\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\"\x97\x01\n" +
	"\x0fRegisterRequest\x12\x1b\n" +
	"\x04name\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x04name\x12#\n" +
	"\busername\x18\x02 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\busername\x12\x1d\n" +
	"\x05email\x18\x03 \x01(\tB\a\xbaH\x04r\x02`\x01R\x05email\x12#\n" +
	"\bpassword\x18\x04 \x01(\tB\a\xbaH\x04r\x02\x10\bR\bpassword\"7\n" +
	"\x10RegisterResponse\x12#\n" +
	"\x04user\x18\x01 \x01(\v2\x0f.kursus.v1.UserR\x04user\"R\n" +
	"\fLoginRequest\x12\x1d\n" +
	"\x05email\x18\x01 \x01(\tB\a\xbaH\x04r\x02`\x01R\x05email\x12#\n" +
	"\bpassword\x18\x02 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\bpassword\"\\\n" +
	"\rLoginResponse\x12#\n" +
	"\x04user\x18\x01 \x01(\v2\x0f.kursus.v1.UserR\x04user\x12&\n" +
	"\x05token\x18\x02 \x01(\v2\x10.kursus.v1.TokenR\x05token\"\x0e\n" +
	"\fGetMeRequest\"4\n" +
	"\rGetMeResponse\x12#\n" +
	"\x04user\x18\x01 \x01(\v2\x0f.kursus.v1.UserR\x04user\"\x8f\x01\n" +
	"\x0fUpdateMeRequest\x12\x17\n" +
	"\x04name\x18\x01 \x01(\tH\x00R\x04name\x88\x01\x01\x12\x1f\n" +
	"\busername\x18\x02 \x01(\tH\x01R\busername\x88\x01\x01\x12\"\n" +
	"\x05email\x18\x03 \x01(\tB\a\xbaH\x04r\x02`\x01H\x02R\x05email\x88\x01\x01B\a\n" +
	"\x05_nameB\v\n" +
	"\t_usernameB\b\n" +
	"\x06_email\"7\n" +
	"\x10UpdateMeResponse\x12#\n" +
	"\x04user\x18\x01 \x01(\v2\x0f.kursus.v1.UserR\x04user\"w\n" +
	"\x15ChangePasswordRequest\x122\n" +
	"\x10current_password\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x0fcurrentPassword\x12*\n" +
	"\fnew_password\x18\x02 \x01(\tB\a\xbaH\x04r\x02\x10\bR\vnewPassword\"\x18\n" +
	"\x16ChangePasswordResponse\"\x19\n" +
	"\x17BecomeInstructorRequest\"g\n" +
	"\x18BecomeInstructorResponse\x12#\n" +
	"\x04user\x18\x01 \x01(\v2\x0f.kursus.v1.UserR\x04user\x12&\n" +
	"\x05token\x18\x02 \x01(\v2\x10.kursus.v1.TokenR\x05token\"\x11\n" +
	"\x0fDeleteMeRequest\"\x12\n" +
	"\x10DeleteMeResponse*C\n" +
	"\x04Role\x12\x14\n" +
	"\x10ROLE_UNSPECIFIED\x10\x00\x12\x10\n" +
	"\fROLE_STUDENT\x10\x01\x12\x13\n" +
	"\x0fROLE_INSTRUCTOR\x10\x022\x88\x04\n" +
	"\vUserService\x12C\n" +
	"\bRegister\x12\x1a.kursus.v1.RegisterRequest\x1a\x1b.kursus.v1.RegisterResponse\x12:\n" +
	"\x05Login\x12\x17.kursus.v1.LoginRequest\x1a\x18.kursus.v1.LoginResponse\x12:\n" +
	"\x05GetMe\x12\x17.kursus.v1.GetMeRequest\x1a\x18.kursus.v1.GetMeResponse\x12C\n" +
	"\bUpdateMe\x12\x1a.kursus.v1.UpdateMeRequest\x1a\x1b.kursus.v1.UpdateMeResponse\x12U\n" +
	"\x0eChangePassword\x12 .kursus.v1.ChangePasswordRequest\x1a!.kursus.v1.ChangePasswordResponse\x12[\n" +
	"\x10BecomeInstructor\x12\".kursus.v1.BecomeInstructorRequest\x1a#.kursus.v1.BecomeInstructorResponse\x12C\n" +
	"\bDeleteMe\x12\x1a.kursus.v1.DeleteMeRequest\x1a\x1b.kursus.v1.DeleteMeResponseB8Z6github.com/kursuslab/kursus/pkg/api/kursus/v1;kursusv1b\x06proto3"

var (
	file_kursus_v1_user_proto_rawDescOnce sync.Once
	file_kursus_v1_user_proto_rawDescData []byte
)

func file_kursus_v1_user_proto_rawDescGZIP() []byte {
	file_kursus_v1_user_proto_rawDescOnce.Do(func() {
		file_kursus_v1_user_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_kursus_v1_user_proto_rawDesc), len(file_kursus_v1_user_proto_rawDesc)))
	})
	return file_kursus_v1_user_proto_rawDescData
}

var file_kursus_v1_user_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_kursus_v1_user_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_kursus_v1_user_proto_goTypes = []any{
	(Role)(0),                        // 0: kursus.v1.Role
	(*User)(nil),                     // 1: kursus.v1.User
	(*Token)(nil),                    // 2: kursus.v1.Token
	(*RegisterRequest)(nil),          // 3: kursus.v1.RegisterRequest
	(*RegisterResponse)(nil),         // 4: kursus.v1.RegisterResponse
	(*LoginRequest)(nil),             // 5: kursus.v1.LoginRequest
	(*LoginResponse)(nil),            // 6: kursus.v1.LoginResponse
	(*GetMeRequest)(nil),             // 7: kursus.v1.GetMeRequest
	(*GetMeResponse)(nil),            // 8: kursus.v1.GetMeResponse
	(*UpdateMeRequest)(nil),          // 9: kursus.v1.UpdateMeRequest
	(*UpdateMeResponse)(nil),         // 10: kursus.v1.UpdateMeResponse
	(*ChangePasswordRequest)(nil),    // 11: kursus.v1.ChangePasswordRequest
	(*ChangePasswordResponse)(nil),   // 12: kursus.v1.ChangePasswordResponse
	(*BecomeInstructorRequest)(nil),  // 13: kursus.v1.BecomeInstructorRequest
	(*BecomeInstructorResponse)(nil), // 14: kursus.v1.BecomeInstructorResponse
	(*DeleteMeRequest)(nil),          // 15: kursus.v1.DeleteMeRequest
	(*DeleteMeResponse)(nil),         // 16: kursus.v1.DeleteMeResponse
	(*timestamppb.Timestamp)(nil),    // 17: google.protobuf.Timestamp
}
var file_kursus_v1_user_proto_depIdxs = []int32{
	0,  // 0: kursus.v1.User.role:type_name -> kursus.v1.Role
	17, // 1: kursus.v1.User.created_at:type_name -> google.protobuf.Timestamp
	17, // 2: kursus.v1.User.updated_at:type_name -> google.protobuf.Timestamp
	17, // 3: kursus.v1.Token.expires_at:type_name -> google.protobuf.Timestamp
	1,  // 4: kursus.v1.RegisterResponse.user:type_name -> kursus.v1.User
	1,  // 5: kursus.v1.LoginResponse.user:type_name -> kursus.v1.User
	2,  // 6: kursus.v1.LoginResponse.token:type_name -> kursus.v1.Token
	1,  // 7: kursus.v1.GetMeResponse.user:type_name -> kursus.v1.User
	1,  // 8: kursus.v1.UpdateMeResponse.user:type_name -> kursus.v1.User
	1,  // 9: kursus.v1.BecomeInstructorResponse.user:type_name -> kursus.v1.User
	2,  // 10: kursus.v1.BecomeInstructorResponse.token:type_name -> kursus.v1.Token
	3,  // 11: kursus.v1.UserService.Register:input_type -> kursus.v1.RegisterRequest
	5,  // 12: kursus.v1.UserService.Login:input_type -> kursus.v1.LoginRequest
	7,  // 13: kursus.v1.UserService.GetMe:input_type -> kursus.v1.GetMeRequest
	9,  // 14: kursus.v1.UserService.UpdateMe:input_type -> kursus.v1.UpdateMeRequest
	11, // 15: kursus.v1.UserService.ChangePassword:input_type -> kursus.v1.ChangePasswordRequest
	13, // 16: kursus.v1.UserService.BecomeInstructor:input_type -> kursus.v1.BecomeInstructorRequest
	15, // 17: kursus.v1.UserService.DeleteMe:input_type -> kursus.v1.DeleteMeRequest
	4,  // 18: kursus.v1.UserService.Register:output_type -> kursus.v1.RegisterResponse
	6,  // 19: kursus.v1.UserService.Login:output_type -> kursus.v1.LoginResponse
	8,  // 20: kursus.v1.UserService.GetMe:output_type -> kursus.v1.GetMeResponse
	10, // 21: kursus.v1.UserService.UpdateMe:output_type -> kursus.v1.UpdateMeResponse
	12, // 22: kursus.v1.UserService.ChangePassword:output_type -> kursus.v1.ChangePasswordResponse
	14, // 23: kursus.v1.UserService.BecomeInstructor:output_type -> kursus.v1.BecomeInstructorResponse
	16, // 24: kursus.v1.UserService.DeleteMe:output_type -> kursus.v1.DeleteMeResponse
	18, // [18:25] is the sub-list for method output_type
	11, // [11:18] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_kursus_v1_user_proto_init() }
func file_kursus_v1_user_proto_init() {
	if File_kursus_v1_user_proto != nil {
		return
	}
	file_kursus_v1_user_proto_msgTypes[8].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_kursus_v1_user_proto_rawDesc), len(file_kursus_v1_user_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_kursus_v1_user_proto_goTypes,
		DependencyIndexes: file_kursus_v1_user_proto_depIdxs,
		EnumInfos:         file_kursus_v1_user_proto_enumTypes,
		MessageInfos:      file_kursus_v1_user_proto_msgTypes,
	}.Build()
	File_kursus_v1_user_proto = out.File
	file_kursus_v1_user_proto_goTypes = nil
	file_kursus_v1_user_proto_depIdxs = nil
}
