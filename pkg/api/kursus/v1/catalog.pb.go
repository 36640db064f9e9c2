// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: kursus/v1/catalog.proto

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

type Category struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Category) Reset() {
	*x = Category{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Category) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Category) ProtoMessage() {}

func (x *Category) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Category.ProtoReflect.Descriptor instead.
func (*Category) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{0}
}

func (x *Category) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Category) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type Course struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId         string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	OwnerUsername   string                 `protobuf:"bytes,3,opt,name=owner_username,json=ownerUsername,proto3" json:"owner_username,omitempty"`
	Category        *Category              `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Title           string                 `protobuf:"bytes,5,opt,name=title,proto3" json:"title,omitempty"`
	Description     string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	ThumbnailUrl    string                 `protobuf:"bytes,7,opt,name=thumbnail_url,json=thumbnailUrl,proto3" json:"thumbnail_url,omitempty"`
	EnrollmentCount int32                  `protobuf:"varint,8,opt,name=enrollment_count,json=enrollmentCount,proto3" json:"enrollment_count,omitempty"`
	Lessons         []*LessonStub          `protobuf:"bytes,9,rep,name=lessons,proto3" json:"lessons,omitempty"`
	CreatedAt       *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Course) Reset() {
	*x = Course{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Course) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Course) ProtoMessage() {}

func (x *Course) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Course.ProtoReflect.Descriptor instead.
func (*Course) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{1}
}

func (x *Course) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Course) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Course) GetOwnerUsername() string {
	if x != nil {
		return x.OwnerUsername
	}
	return ""
}

func (x *Course) GetCategory() *Category {
	if x != nil {
		return x.Category
	}
	return nil
}

func (x *Course) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Course) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Course) GetThumbnailUrl() string {
	if x != nil {
		return x.ThumbnailUrl
	}
	return ""
}

func (x *Course) GetEnrollmentCount() int32 {
	if x != nil {
		return x.EnrollmentCount
	}
	return 0
}

func (x *Course) GetLessons() []*LessonStub {
	if x != nil {
		return x.Lessons
	}
	return nil
}

func (x *Course) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Course) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type ListCoursesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageSize      int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	Query         string                 `protobuf:"bytes,3,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCoursesRequest) Reset() {
	*x = ListCoursesRequest{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCoursesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCoursesRequest) ProtoMessage() {}

func (x *ListCoursesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCoursesRequest.ProtoReflect.Descriptor instead.
func (*ListCoursesRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{2}
}

func (x *ListCoursesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListCoursesRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

func (x *ListCoursesRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type ListCoursesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Courses       []*Course              `protobuf:"bytes,1,rep,name=courses,proto3" json:"courses,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCoursesResponse) Reset() {
	*x = ListCoursesResponse{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCoursesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCoursesResponse) ProtoMessage() {}

func (x *ListCoursesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCoursesResponse.ProtoReflect.Descriptor instead.
func (*ListCoursesResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{3}
}

func (x *ListCoursesResponse) GetCourses() []*Course {
	if x != nil {
		return x.Courses
	}
	return nil
}

func (x *ListCoursesResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type GetCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCourseRequest) Reset() {
	*x = GetCourseRequest{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCourseRequest) ProtoMessage() {}

func (x *GetCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCourseRequest.ProtoReflect.Descriptor instead.
func (*GetCourseRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{4}
}

func (x *GetCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type GetCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Course        *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCourseResponse) Reset() {
	*x = GetCourseResponse{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCourseResponse) ProtoMessage() {}

func (x *GetCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCourseResponse.ProtoReflect.Descriptor instead.
func (*GetCourseResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{5}
}

func (x *GetCourseResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

type FeaturedCoursesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FeaturedCoursesRequest) Reset() {
	*x = FeaturedCoursesRequest{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FeaturedCoursesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FeaturedCoursesRequest) ProtoMessage() {}

func (x *FeaturedCoursesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FeaturedCoursesRequest.ProtoReflect.Descriptor instead.
func (*FeaturedCoursesRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{6}
}

type FeaturedCoursesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Courses       []*Course              `protobuf:"bytes,1,rep,name=courses,proto3" json:"courses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FeaturedCoursesResponse) Reset() {
	*x = FeaturedCoursesResponse{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FeaturedCoursesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FeaturedCoursesResponse) ProtoMessage() {}

func (x *FeaturedCoursesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FeaturedCoursesResponse.ProtoReflect.Descriptor instead.
func (*FeaturedCoursesResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{7}
}

func (x *FeaturedCoursesResponse) GetCourses() []*Course {
	if x != nil {
		return x.Courses
	}
	return nil
}

type MyCoursesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MyCoursesRequest) Reset() {
	*x = MyCoursesRequest{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MyCoursesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MyCoursesRequest) ProtoMessage() {}

func (x *MyCoursesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MyCoursesRequest.ProtoReflect.Descriptor instead.
func (*MyCoursesRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{8}
}

type MyCoursesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Courses       []*Course              `protobuf:"bytes,1,rep,name=courses,proto3" json:"courses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MyCoursesResponse) Reset() {
	*x = MyCoursesResponse{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MyCoursesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MyCoursesResponse) ProtoMessage() {}

func (x *MyCoursesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MyCoursesResponse.ProtoReflect.Descriptor instead.
func (*MyCoursesResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{9}
}

func (x *MyCoursesResponse) GetCourses() []*Course {
	if x != nil {
		return x.Courses
	}
	return nil
}

type CreateCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	CategoryId    string                 `protobuf:"bytes,3,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	ThumbnailUrl  string                 `protobuf:"bytes,4,opt,name=thumbnail_url,json=thumbnailUrl,proto3" json:"thumbnail_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCourseRequest) Reset() {
	*x = CreateCourseRequest{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCourseRequest) ProtoMessage() {}

func (x *CreateCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCourseRequest.ProtoReflect.Descriptor instead.
func (*CreateCourseRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{10}
}

func (x *CreateCourseRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateCourseRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateCourseRequest) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *CreateCourseRequest) GetThumbnailUrl() string {
	if x != nil {
		return x.ThumbnailUrl
	}
	return ""
}

type CreateCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Course        *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCourseResponse) Reset() {
	*x = CreateCourseResponse{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCourseResponse) ProtoMessage() {}

func (x *CreateCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCourseResponse.ProtoReflect.Descriptor instead.
func (*CreateCourseResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{11}
}

func (x *CreateCourseResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

type UpdateCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Title         *string                `protobuf:"bytes,2,opt,name=title,proto3,oneof" json:"title,omitempty"`
	Description   *string                `protobuf:"bytes,3,opt,name=description,proto3,oneof" json:"description,omitempty"`
	CategoryId    *string                `protobuf:"bytes,4,opt,name=category_id,json=categoryId,proto3,oneof" json:"category_id,omitempty"`
	ThumbnailUrl  *string                `protobuf:"bytes,5,opt,name=thumbnail_url,json=thumbnailUrl,proto3,oneof" json:"thumbnail_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCourseRequest) Reset() {
	*x = UpdateCourseRequest{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCourseRequest) ProtoMessage() {}

func (x *UpdateCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCourseRequest.ProtoReflect.Descriptor instead.
func (*UpdateCourseRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *UpdateCourseRequest) GetTitle() string {
	if x != nil && x.Title != nil {
		return *x.Title
	}
	return ""
}

func (x *UpdateCourseRequest) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *UpdateCourseRequest) GetCategoryId() string {
	if x != nil && x.CategoryId != nil {
		return *x.CategoryId
	}
	return ""
}

func (x *UpdateCourseRequest) GetThumbnailUrl() string {
	if x != nil && x.ThumbnailUrl != nil {
		return *x.ThumbnailUrl
	}
	return ""
}

type UpdateCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Course        *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCourseResponse) Reset() {
	*x = UpdateCourseResponse{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCourseResponse) ProtoMessage() {}

func (x *UpdateCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCourseResponse.ProtoReflect.Descriptor instead.
func (*UpdateCourseResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{13}
}

func (x *UpdateCourseResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

type DeleteCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCourseRequest) Reset() {
	*x = DeleteCourseRequest{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCourseRequest) ProtoMessage() {}

func (x *DeleteCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCourseRequest.ProtoReflect.Descriptor instead.
func (*DeleteCourseRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{14}
}

func (x *DeleteCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type DeleteCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCourseResponse) Reset() {
	*x = DeleteCourseResponse{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCourseResponse) ProtoMessage() {}

func (x *DeleteCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCourseResponse.ProtoReflect.Descriptor instead.
func (*DeleteCourseResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{15}
}

type ListCategoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesRequest) Reset() {
	*x = ListCategoriesRequest{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesRequest) ProtoMessage() {}

func (x *ListCategoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesRequest.ProtoReflect.Descriptor instead.
func (*ListCategoriesRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{16}
}

type ListCategoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*Category            `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesResponse) Reset() {
	*x = ListCategoriesResponse{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesResponse) ProtoMessage() {}

func (x *ListCategoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesResponse.ProtoReflect.Descriptor instead.
func (*ListCategoriesResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{17}
}

func (x *ListCategoriesResponse) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

type CreateCategoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCategoryRequest) Reset() {
	*x = CreateCategoryRequest{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCategoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCategoryRequest) ProtoMessage() {}

func (x *CreateCategoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCategoryRequest.ProtoReflect.Descriptor instead.
func (*CreateCategoryRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{18}
}

func (x *CreateCategoryRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateCategoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      *Category              `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCategoryResponse) Reset() {
	*x = CreateCategoryResponse{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCategoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCategoryResponse) ProtoMessage() {}

func (x *CreateCategoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCategoryResponse.ProtoReflect.Descriptor instead.
func (*CreateCategoryResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{19}
}

func (x *CreateCategoryResponse) GetCategory() *Category {
	if x != nil {
		return x.Category
	}
	return nil
}

type CreateThumbnailUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateThumbnailUploadRequest) Reset() {
	*x = CreateThumbnailUploadRequest{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateThumbnailUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateThumbnailUploadRequest) ProtoMessage() {}

func (x *CreateThumbnailUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateThumbnailUploadRequest.ProtoReflect.Descriptor instead.
func (*CreateThumbnailUploadRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{20}
}

func (x *CreateThumbnailUploadRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type CreateThumbnailUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploadUrl     string                 `protobuf:"bytes,1,opt,name=upload_url,json=uploadUrl,proto3" json:"upload_url,omitempty"`
	Method        string                 `protobuf:"bytes,2,opt,name=method,proto3" json:"method,omitempty"`
	Headers       map[string]string      `protobuf:"bytes,3,rep,name=headers,proto3" json:"headers,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	PublicUrl     string                 `protobuf:"bytes,4,opt,name=public_url,json=publicUrl,proto3" json:"public_url,omitempty"`
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateThumbnailUploadResponse) Reset() {
	*x = CreateThumbnailUploadResponse{}
	mi := &file_kursus_v1_catalog_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateThumbnailUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateThumbnailUploadResponse) ProtoMessage() {}

func (x *CreateThumbnailUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_catalog_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateThumbnailUploadResponse.ProtoReflect.Descriptor instead.
func (*CreateThumbnailUploadResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_catalog_proto_rawDescGZIP(), []int{21}
}

func (x *CreateThumbnailUploadResponse) GetUploadUrl() string {
	if x != nil {
		return x.UploadUrl
	}
	return ""
}

func (x *CreateThumbnailUploadResponse) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *CreateThumbnailUploadResponse) GetHeaders() map[string]string {
	if x != nil {
		return x.Headers
	}
	return nil
}

func (x *CreateThumbnailUploadResponse) GetPublicUrl() string {
	if x != nil {
		return x.PublicUrl
	}
	return ""
}

func (x *CreateThumbnailUploadResponse) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

var File_kursus_v1_catalog_proto protoreflect.FileDescriptor

const file_kursus_v1_catalog_proto_rawDesc = "" +
	"\n" +
	"\x17kursus/v1/catalog.proto\x12\tkursus.v1\x1a\x1bbuf/validate/validate.proto\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x16kursus/v1/lesson.proto\".\n" +
	"\bCategory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"\xba\x03\n" +
	"\x06Course\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12%\n" +
	"\x0eowner_username\x18\x03 \x01(\tR\rownerUsername\x12/\n" +
	"\bcategory\x18\x04 \x01(\v2\x13.kursus.v1.CategoryR\bcategory\x12\x14\n" +
	"\x05title\x18\x05 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12#\n" +
	"\rthumbnail_url\x18\a \x01(\tR\fthumbnailUrl\x12)\n" +
	"\x10enrollment_count\x18\b \x01(\x05R\x0fenrollmentCount\x12/\n" +
	"\alessons\x18\t \x03(\v2\x15.kursus.v1.LessonStubR\alessons\x129\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"q\n" +
	"\x12ListCoursesRequest\x12&\n" +
	"\tpage_size\x18\x01 \x01(\x05B\t\xbaH\x06\x1a\x04\x18d(\x00R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x02 \x01(\tR\tpageToken\x12\x14\n" +
	"\x05query\x18\x03 \x01(\tR\x05query\"j\n" +
	"\x13ListCoursesResponse\x12+\n" +
	"\acourses\x18\x01 \x03(\v2\x11.kursus.v1.CourseR\acourses\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"9\n" +
	"\x10GetCourseRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\">\n" +
	"\x11GetCourseResponse\x12)\n" +
	"\x06course\x18\x01 \x01(\v2\x11.kursus.v1.CourseR\x06course\"\x18\n" +
	"\x16FeaturedCoursesRequest\"F\n" +
	"\x17FeaturedCoursesResponse\x12+\n" +
	"\acourses\x18\x01 \x03(\v2\x11.kursus.v1.CourseR\acourses\"\x12\n" +
	"\x10MyCoursesRequest\"@\n" +
	"\x11MyCoursesResponse\x12+\n" +
	"\acourses\x18\x01 \x03(\v2\x11.kursus.v1.CourseR\acourses\"\xa6\x01\n" +
	"\x13CreateCourseRequest\x12\x1d\n" +
	"\x05title\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x05title\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12)\n" +
	"\vcategory_id\x18\x03 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\n" +
	"categoryId\x12#\n" +
	"\rthumbnail_url\x18\x04 \x01(\tR\fthumbnailUrl\"A\n" +
	"\x14CreateCourseResponse\x12)\n" +
	"\x06course\x18\x01 \x01(\v2\x11.kursus.v1.CourseR\x06course\"\x8a\x02\n" +
	"\x13UpdateCourseRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\x12\x19\n" +
	"\x05title\x18\x02 \x01(\tH\x00R\x05title\x88\x01\x01\x12%\n" +
	"\vdescription\x18\x03 \x01(\tH\x01R\vdescription\x88\x01\x01\x12$\n" +
	"\vcategory_id\x18\x04 \x01(\tH\x02R\n" +
	"categoryId\x88\x01\x01\x12(\n" +
	"\rthumbnail_url\x18\x05 \x01(\tH\x03R\fthumbnailUrl\x88\x01\x01B\b\n" +
	"\x06_titleB\x0e\n" +
	"\f_descriptionB\x0e\n" +
	"\f_category_idB\x10\n" +
	"\x0e_thumbnail_url\"A\n" +
	"\x14UpdateCourseResponse\x12)\n" +
	"\x06course\x18\x01 \x01(\v2\x11.kursus.v1.CourseR\x06course\"<\n" +
	"\x13DeleteCourseRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"\x16\n" +
	"\x14DeleteCourseResponse\"\x17\n" +
	"\x15ListCategoriesRequest\"M\n" +
	"\x16ListCategoriesResponse\x123\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x13.kursus.v1.CategoryR\n" +
	"categories\"4\n" +
	"\x15CreateCategoryRequest\x12\x1b\n" +
	"\x04name\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x04name\"I\n" +
	"\x16CreateCategoryResponse\x12/\n" +
	"\bcategory\x18\x01 \x01(\v2\x13.kursus.v1.CategoryR\bcategory\"C\n" +
	"\x1cCreateThumbnailUploadRequest\x12#\n" +
	"\bfilename\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\bfilename\"\xbd\x02\n" +
	"\x1dCreateThumbnailUploadResponse\x12\x1d\n" +
	"\n" +
	"upload_url\x18\x01 \x01(\tR\tuploadUrl\x12\x16\n" +
	"\x06method\x18\x02 \x01(\tR\x06method\x12O\n" +
	"\aheaders\x18\x03 \x03(\v25.kursus.v1.CreateThumbnailUploadResponse.HeadersEntryR\aheaders\x12\x1d\n" +
	"\n" +
	"public_url\x18\x04 \x01(\tR\tpublicUrl\x129\n" +
	"\n" +
	"expires_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\x1a:\n" +
	"\fHeadersEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x012\xd5\x06\n" +
	"\x0eCatalogService\x12L\n" +
	"\vListCourses\x12\x1d.kursus.v1.ListCoursesRequest\x1a\x1e.kursus.v1.ListCoursesResponse\x12F\n" +
	"\tGetCourse\x12\x1b.kursus.v1.GetCourseRequest\x1a\x1c.kursus.v1.GetCourseResponse\x12X\n" +
	"\x0fFeaturedCourses\x12!.kursus.v1.FeaturedCoursesRequest\x1a\".kursus.v1.FeaturedCoursesResponse\x12F\n" +
	"\tMyCourses\x12\x1b.kursus.v1.MyCoursesRequest\x1a\x1c.kursus.v1.MyCoursesResponse\x12O\n" +
	"\fCreateCourse\x12\x1e.kursus.v1.CreateCourseRequest\x1a\x1f.kursus.v1.CreateCourseResponse\x12O\n" +
	"\fUpdateCourse\x12\x1e.kursus.v1.UpdateCourseRequest\x1a\x1f.kursus.v1.UpdateCourseResponse\x12O\n" +
	"\fDeleteCourse\x12\x1e.kursus.v1.DeleteCourseRequest\x1a\x1f.kursus.v1.DeleteCourseResponse\x12U\n" +
	"\x0eListCategories\x12 .kursus.v1.ListCategoriesRequest\x1a!.kursus.v1.ListCategoriesResponse\x12U\n" +
	"\x0eCreateCategory\x12 .kursus.v1.CreateCategoryRequest\x1a!.kursus.v1.CreateCategoryResponse\x12j\n" +
	"\x15CreateThumbnailUpload\x12'.kursus.v1.CreateThumbnailUploadRequest\x1a(.kursus.v1.CreateThumbnailUploadResponseB8Z6github.com/kursuslab/kursus/pkg/api/kursus/v1;kursusv1b\x06proto3"

var (
	file_kursus_v1_catalog_proto_rawDescOnce sync.Once
	file_kursus_v1_catalog_proto_rawDescData []byte
)

func file_kursus_v1_catalog_proto_rawDescGZIP() []byte {
	file_kursus_v1_catalog_proto_rawDescOnce.Do(func() {
		file_kursus_v1_catalog_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_kursus_v1_catalog_proto_rawDesc), len(file_kursus_v1_catalog_proto_rawDesc)))
	})
	return file_kursus_v1_catalog_proto_rawDescData
}

var file_kursus_v1_catalog_proto_msgTypes = make([]protoimpl.MessageInfo, 23)
var file_kursus_v1_catalog_proto_goTypes = []any{
	(*Category)(nil),                      // 0: kursus.v1.Category
	(*Course)(nil),                        // 1: kursus.v1.Course
	(*ListCoursesRequest)(nil),            // 2: kursus.v1.ListCoursesRequest
	(*ListCoursesResponse)(nil),           // 3: kursus.v1.ListCoursesResponse
	(*GetCourseRequest)(nil),              // 4: kursus.v1.GetCourseRequest
	(*GetCourseResponse)(nil),             // 5: kursus.v1.GetCourseResponse
	(*FeaturedCoursesRequest)(nil),        // 6: kursus.v1.FeaturedCoursesRequest
	(*FeaturedCoursesResponse)(nil),       // 7: kursus.v1.FeaturedCoursesResponse
	(*MyCoursesRequest)(nil),              // 8: kursus.v1.MyCoursesRequest
	(*MyCoursesResponse)(nil),             // 9: kursus.v1.MyCoursesResponse
	(*CreateCourseRequest)(nil),           // 10: kursus.v1.CreateCourseRequest
	(*CreateCourseResponse)(nil),          // 11: kursus.v1.CreateCourseResponse
	(*UpdateCourseRequest)(nil),           // 12: kursus.v1.UpdateCourseRequest
	(*UpdateCourseResponse)(nil),          // 13: kursus.v1.UpdateCourseResponse
	(*DeleteCourseRequest)(nil),           // 14: kursus.v1.DeleteCourseRequest
	(*DeleteCourseResponse)(nil),          // 15: kursus.v1.DeleteCourseResponse
	(*ListCategoriesRequest)(nil),         // 16: kursus.v1.ListCategoriesRequest
	(*ListCategoriesResponse)(nil),        // 17: kursus.v1.ListCategoriesResponse
	(*CreateCategoryRequest)(nil),         // 18: kursus.v1.CreateCategoryRequest
	(*CreateCategoryResponse)(nil),        // 19: kursus.v1.CreateCategoryResponse
	(*CreateThumbnailUploadRequest)(nil),  // 20: kursus.v1.CreateThumbnailUploadRequest
	(*CreateThumbnailUploadResponse)(nil), // 21: kursus.v1.CreateThumbnailUploadResponse
	nil,                                   // 22: kursus.v1.CreateThumbnailUploadResponse.HeadersEntry
	(*LessonStub)(nil),                    // 23: kursus.v1.LessonStub
	(*timestamppb.Timestamp)(nil),         // 24: google.protobuf.Timestamp
}
var file_kursus_v1_catalog_proto_depIdxs = []int32{
	0,  // 0: kursus.v1.Course.category:type_name -> kursus.v1.Category
	23, // 1: kursus.v1.Course.lessons:type_name -> kursus.v1.LessonStub
	24, // 2: kursus.v1.Course.created_at:type_name -> google.protobuf.Timestamp
	24, // 3: kursus.v1.Course.updated_at:type_name -> google.protobuf.Timestamp
	1,  // 4: kursus.v1.ListCoursesResponse.courses:type_name -> kursus.v1.Course
	1,  // 5: kursus.v1.GetCourseResponse.course:type_name -> kursus.v1.Course
	1,  // 6: kursus.v1.FeaturedCoursesResponse.courses:type_name -> kursus.v1.Course
	1,  // 7: kursus.v1.MyCoursesResponse.courses:type_name -> kursus.v1.Course
	1,  // 8: kursus.v1.CreateCourseResponse.course:type_name -> kursus.v1.Course
	1,  // 9: kursus.v1.UpdateCourseResponse.course:type_name -> kursus.v1.Course
	0,  // 10: kursus.v1.ListCategoriesResponse.categories:type_name -> kursus.v1.Category
	0,  // 11: kursus.v1.CreateCategoryResponse.category:type_name -> kursus.v1.Category
	22, // 12: kursus.v1.CreateThumbnailUploadResponse.headers:type_name -> kursus.v1.CreateThumbnailUploadResponse.HeadersEntry
	24, // 13: kursus.v1.CreateThumbnailUploadResponse.expires_at:type_name -> google.protobuf.Timestamp
	2,  // 14: kursus.v1.CatalogService.ListCourses:input_type -> kursus.v1.ListCoursesRequest
	4,  // 15: kursus.v1.CatalogService.GetCourse:input_type -> kursus.v1.GetCourseRequest
	6,  // 16: kursus.v1.CatalogService.FeaturedCourses:input_type -> kursus.v1.FeaturedCoursesRequest
	8,  // 17: kursus.v1.CatalogService.MyCourses:input_type -> kursus.v1.MyCoursesRequest
	10, // 18: kursus.v1.CatalogService.CreateCourse:input_type -> kursus.v1.CreateCourseRequest
	12, // 19: kursus.v1.CatalogService.UpdateCourse:input_type -> kursus.v1.UpdateCourseRequest
	14, // 20: kursus.v1.CatalogService.DeleteCourse:input_type -> kursus.v1.DeleteCourseRequest
	16, // 21: kursus.v1.CatalogService.ListCategories:input_type -> kursus.v1.ListCategoriesRequest
	18, // 22: kursus.v1.CatalogService.CreateCategory:input_type -> kursus.v1.CreateCategoryRequest
	20, // 23: kursus.v1.CatalogService.CreateThumbnailUpload:input_type -> kursus.v1.CreateThumbnailUploadRequest
	3,  // 24: kursus.v1.CatalogService.ListCourses:output_type -> kursus.v1.ListCoursesResponse
	5,  // 25: kursus.v1.CatalogService.GetCourse:output_type -> kursus.v1.GetCourseResponse
	7,  // 26: kursus.v1.CatalogService.FeaturedCourses:output_type -> kursus.v1.FeaturedCoursesResponse
	9,  // 27: kursus.v1.CatalogService.MyCourses:output_type -> kursus.v1.MyCoursesResponse
	11, // 28: kursus.v1.CatalogService.CreateCourse:output_type -> kursus.v1.CreateCourseResponse
	13, // 29: kursus.v1.CatalogService.UpdateCourse:output_type -> kursus.v1.UpdateCourseResponse
	15, // 30: kursus.v1.CatalogService.DeleteCourse:output_type -> kursus.v1.DeleteCourseResponse
	17, // 31: kursus.v1.CatalogService.ListCategories:output_type -> kursus.v1.ListCategoriesResponse
	19, // 32: kursus.v1.CatalogService.CreateCategory:output_type -> kursus.v1.CreateCategoryResponse
	21, // 33: kursus.v1.CatalogService.CreateThumbnailUpload:output_type -> kursus.v1.CreateThumbnailUploadResponse
	24, // [24:34] is the sub-list for method output_type
	14, // [14:24] is the sub-list for method input_type
	14, // [14:14] is the sub-list for extension type_name
	14, // [14:14] is the sub-list for extension extendee
	0,  // [0:14] is the sub-list for field type_name
}

func init() { file_kursus_v1_catalog_proto_init() }
func file_kursus_v1_catalog_proto_init() {
	if File_kursus_v1_catalog_proto != nil {
		return
	}
	file_kursus_v1_lesson_proto_init()
	file_kursus_v1_catalog_proto_msgTypes[12].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_kursus_v1_catalog_proto_rawDesc), len(file_kursus_v1_catalog_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   23,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_kursus_v1_catalog_proto_goTypes,
		DependencyIndexes: file_kursus_v1_catalog_proto_depIdxs,
		MessageInfos:      file_kursus_v1_catalog_proto_msgTypes,
	}.Build()
	File_kursus_v1_catalog_proto = out.File
	file_kursus_v1_catalog_proto_goTypes = nil
	file_kursus_v1_catalog_proto_depIdxs = nil
}
